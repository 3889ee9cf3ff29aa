// This file is part of VM2600.
//
// VM2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VM2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VM2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"testing"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/prefs"
	"github.com/BillySpelchan/VM2600/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get(), prefs.Value(false))
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))

	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.Get(), prefs.Value(false))

	test.ExpectSuccess(t, b.Set("True"))
	test.ExpectEquality(t, b.String(), "true")

	test.ExpectFailure(t, b.Set(10))

	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Get(), prefs.Value(false))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	i.SetDefault(1000)
	test.ExpectEquality(t, i.Get(), prefs.Value(1000))

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, i.Get(), prefs.Value(10))

	test.ExpectSuccess(t, i.Set("20"))
	test.ExpectEquality(t, i.String(), "20")

	test.ExpectSuccess(t, i.Set("$ff"))
	test.ExpectEquality(t, i.Get(), prefs.Value(255))

	test.ExpectSuccess(t, i.Set("0x10"))
	test.ExpectEquality(t, i.Get(), prefs.Value(16))

	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectFailure(t, i.Set(1.5))
	test.ExpectEquality(t, i.Get(), prefs.Value(16))

	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Get(), prefs.Value(1000))
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectEquality(t, s.String(), "")

	test.ExpectSuccess(t, s.Set("hello world"))
	test.ExpectEquality(t, s.Get(), prefs.Value("hello world"))

	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "hello")

	test.ExpectSuccess(t, s.Set("abcdefgh"))
	test.ExpectEquality(t, s.String(), "abcde")

	test.ExpectSuccess(t, s.Set(123))
	test.ExpectEquality(t, s.String(), "123")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var post int

	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook failure prevents the value from being stored
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestCollection(t *testing.T) {
	var limit prefs.Int
	var caption prefs.Bool

	c := prefs.NewCollection()
	test.ExpectSuccess(t, c.Add("cpu.steplimit", &limit))
	test.ExpectSuccess(t, c.Add("tv.caption", &caption))

	err := c.Add("tv.caption", &caption)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicatePref))

	test.ExpectSuccess(t, c.Set("cpu.steplimit", 50))
	test.ExpectEquality(t, limit.Get(), prefs.Value(50))

	err = c.Set("tv.unknown", 50)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownPref))

	tw := &test.CompareWriter{}
	c.Write(tw)
	test.ExpectSuccess(t, tw.Compare("cpu.steplimit :: 50\ntv.caption :: false\n"))
}

func TestCollectionCommandLine(t *testing.T) {
	var limit prefs.Int
	var caption prefs.Bool

	c := prefs.NewCollection()
	c.Add("cpu.steplimit", &limit)
	c.Add("tv.caption", &caption)

	prefs.PushCommandLineStack("cpu.steplimit::100; tv.caption::true; other::x")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, limit.Get(), prefs.Value(100))
	test.ExpectEquality(t, caption.Get(), prefs.Value(true))

	// unconsumed entries remain on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::x")

	prefs.PushCommandLineStack("cpu.steplimit::many")
	test.ExpectFailure(t, c.ApplyCommandLine())
	prefs.PopCommandLineStack()
}
