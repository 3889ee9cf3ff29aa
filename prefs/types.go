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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// Pref is implemented by all the preference types in the package.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// live is the storage shared by all preference types. the hooks are called
// before and after the value is stored. an error from the pre hook prevents
// the value from being stored.
type live[T any] struct {
	value    atomic.Value
	def      T
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (l *live[T]) load() T {
	if v := l.value.Load(); v != nil {
		return v.(T)
	}
	return l.def
}

func (l *live[T]) store(nv T) error {
	if l.hookPre != nil {
		if err := l.hookPre(nv); err != nil {
			return err
		}
	}

	l.value.Store(nv)

	if l.hookPost != nil {
		return l.hookPost(nv)
	}
	return nil
}

// SetHookPre sets the function to be called before the value is stored.
func (l *live[T]) SetHookPre(f func(value Value) error) {
	l.hookPre = f
}

// SetHookPost sets the function to be called after the value is stored.
func (l *live[T]) SetHookPost(f func(value Value) error) {
	l.hookPost = f
}

// SetDefault sets the value returned by Get() before any value has been Set()
// and the value restored by Reset(). The hooks are not called.
func (l *live[T]) SetDefault(v T) {
	l.def = v
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	live[bool]
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string of "true" (in any case) is true, everything else is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to its default.
func (p *Bool) Reset() error {
	return p.store(p.def)
}

// Int implements an integer type in the prefs system.
type Int struct {
	live[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or a string that can be
// parsed as an integer. Hex notation with a $ or 0x prefix is accepted.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int64:
		return p.store(int(v))
	case uint64:
		return p.store(int(v))
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "$") {
			s = "0x" + s[1:]
		}
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(int(n))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to its default.
func (p *Int) Reset() error {
	return p.store(p.def)
}

// String implements a string type in the prefs system.
type String struct {
	live[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means no maximum. The current value is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.crop(s) != s {
		p.value.Store(p.crop(s))
	}
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// Set new value to String type. Any value is converted with %v.
func (p *String) Set(v Value) error {
	return p.store(p.crop(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to its default.
func (p *String) Reset() error {
	return p.store(p.def)
}
