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

package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
)

// the maximum depth of macros expanded from inside other macros
const maxMacroDepth = 16

// macro is a recorded sequence of tokenized lines.
type macro struct {
	name     string
	defaults []Token
	lines    [][]Token

	// labels declared in the body of the macro
	labels map[string]bool
}

func (m *macro) record(tokens []Token) {
	if len(tokens) > 0 && tokens[0].Type == LabelDeclaration {
		m.labels[tokens[0].Contents] = true
	}
	m.lines = append(m.lines, tokens)
}

// parameter returns the parameter number of a placeholder. placeholders are
// P0 to P9
func parameter(s string) (int, bool) {
	if len(s) != 2 || (s[0] != 'P' && s[0] != 'p') {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// expand a macro into the current bank. arguments take the place of the
// defaults in order
func (asm *Assembler) expand(m *macro, args []Token) error {
	if asm.depth >= maxMacroDepth {
		return curated.Errorf(MacroDepth, m.name)
	}

	params := make([]Token, max(len(m.defaults), len(args)))
	copy(params, m.defaults)
	copy(params, args)

	asm.expansions++
	prefix := fmt.Sprintf("%s_%d_", m.name, asm.expansions)

	asm.depth++
	defer func() {
		asm.depth--
	}()

	for _, line := range m.lines {
		rewritten := make([]Token, len(line))
		for i, tk := range line {
			switch tk.Type {
			case LabelDeclaration:
				if m.labels[tk.Contents] {
					tk.Contents = prefix + tk.Contents
				}
			case LabelLink:
				if p, ok := parameter(tk.Contents); ok {
					if p >= len(params) {
						return curated.Errorf(DirectiveArgs, "MACRO", fmt.Sprintf("%s: no value for %s", m.name, strings.ToUpper(tk.Contents)))
					}
					tk = params[p]
				} else if m.labels[tk.Contents] {
					tk.Contents = prefix + tk.Contents
				}
			}
			rewritten[i] = tk
		}

		if err := asm.emit(rewritten); err != nil {
			return curated.Errorf(MacroLine, m.name, err)
		}
	}

	return nil
}
