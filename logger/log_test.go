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

package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BillySpelchan/VM2600/logger"
	"github.com/BillySpelchan/VM2600/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

type stringer struct{}

func (stringer) String() string {
	return "stringer"
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	test.ExpectFailure(t, log.Write(tw))
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Clear()
	tw.Clear()
	test.ExpectFailure(t, log.Write(tw))
}

func TestLoggerRepeat(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Log(logger.Allow, "tag", "repeated")
	log.Log(logger.Allow, "tag", "repeated")
	log.Log(logger.Allow, "tag", "repeated")
	log.Log(logger.Allow, "tag", "new")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("tag: repeated (repeat x3)\ntag: new\n"))
}

func TestLoggerDetailTypes(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Log(logger.Allow, "err", errors.New("an error"))
	log.Log(logger.Allow, "str", stringer{})
	log.Log(logger.Allow, "int", 10)
	log.Logf(logger.Allow, "fmt", "%02x", 255)
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("err: an error\nstr: stringer\nint: 10\nfmt: ff\n"))
}

func TestLoggerPermission(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Log(deny{}, "tag", "should not appear")
	log.Logf(deny{}, "tag", "should not appear %d", 1)
	test.ExpectFailure(t, log.Write(tw))
}

func TestLoggerMaximum(t *testing.T) {
	log := logger.NewLogger(10)
	for i := 0; i < 25; i++ {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}

	e := log.Entries()
	test.ExpectEquality(t, len(e), 10)
	test.ExpectEquality(t, e[0].Detail, "entry 15")
	test.ExpectEquality(t, e[9].Detail, "entry 24")
}

func TestLoggerEcho(t *testing.T) {
	echo := &test.CompareWriter{}
	log := logger.NewLogger(10)
	log.SetEcho(echo)
	log.Log(logger.Allow, "tag", "one")
	log.Log(logger.Allow, "tag", "one")
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "two")
	test.ExpectSuccess(t, echo.Compare("tag: one\ntag: one (repeat x2)\n"))
}

func TestCentralLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	logger.Clear()
	logger.Log(logger.Allow, "central", fmt.Errorf("wrapped: %w", errors.New("error")))
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("central: wrapped: error\n"))
	test.ExpectEquality(t, len(logger.Entries()), 1)
	logger.Clear()
}
