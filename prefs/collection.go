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
	"io"
	"slices"

	"github.com/BillySpelchan/VM2600/curated"
)

// Sentinel errors.
const (
	UnknownPref   = "prefs: unknown preference (%s)"
	DuplicatePref = "prefs: preference already added (%s)"
)

// Collection is a set of named preferences.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the collection under key.
func (c *Collection) Add(key string, p Pref) error {
	if _, ok := c.entries[key]; ok {
		return curated.Errorf(DuplicatePref, key)
	}
	c.entries[key] = p
	return nil
}

// Set the preference named by key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[key]
	if !ok {
		return curated.Errorf(UnknownPref, key)
	}
	return p.Set(v)
}

// ApplyCommandLine sets every preference in the collection that has a value
// on the top of the command line stack. Entries for keys that are not in the
// collection are left on the stack.
func (c *Collection) ApplyCommandLine() error {
	for _, k := range c.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := c.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Write every preference and its value, sorted by key.
func (c *Collection) Write(w io.Writer) {
	for _, k := range c.keys() {
		fmt.Fprintf(w, "%s :: %s\n", k, c.entries[k].String())
	}
}

func (c *Collection) keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
