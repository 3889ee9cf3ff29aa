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
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
)

// directive handles a line beginning with a directive token
func (asm *Assembler) directive(tokens []Token) ([]uint8, []Label, error) {
	name := strings.ToUpper(tokens[0].Contents)

	switch name {
	case "BANK":
		return nil, nil, asm.bank(asm.substitute(tokens[1:]))

	case "ORG":
		args := asm.substitute(tokens[1:])
		if len(args) != 1 || args[0].Type != Number {
			return nil, nil, curated.Errorf(DirectiveArgs, name, "expecting a single address")
		}
		return nil, nil, asm.current.Seek(args[0].Num)

	case "EQU":
		if len(tokens) != 3 || tokens[1].Type != LabelLink {
			return nil, nil, curated.Errorf(DirectiveArgs, name, "expecting a name and a value")
		}
		v := asm.substitute(tokens[2:])[0]
		if v.Type != Number {
			return nil, nil, curated.Errorf(DirectiveArgs, name, "value must be a number or a constant")
		}
		if old, ok := asm.equates[tokens[1].Contents]; ok && old != v.Num {
			asm.warn(fmt.Sprintf("constant %s redefined", tokens[1].Contents))
		}
		asm.equates[tokens[1].Contents] = v.Num
		return nil, nil, nil

	case "BYTE":
		return asm.storage(asm.substitute(tokens[1:]), 1)

	case "WORD":
		return asm.storage(asm.substitute(tokens[1:]), 2)

	case "HIGH", "LOW":
		return nil, nil, curated.Errorf(DirectiveArgs, name, "only valid as part of an operand")

	case "MSTART":
		if len(tokens) < 2 || tokens[1].Type != LabelLink {
			return nil, nil, curated.Errorf(DirectiveArgs, name, "expecting a macro name")
		}
		asm.recording = &macro{
			name:     tokens[1].Contents,
			defaults: asm.substitute(tokens[2:]),
			labels:   make(map[string]bool),
		}
		return nil, nil, nil

	case "MEND":
		return nil, nil, curated.Errorf(UnmatchedMEND)

	case "MACRO":
		if len(tokens) < 2 || tokens[1].Type != LabelLink {
			return nil, nil, curated.Errorf(DirectiveArgs, name, "expecting a macro name")
		}
		m, ok := asm.macros[tokens[1].Contents]
		if !ok {
			return nil, nil, curated.Errorf(UnknownMacro, tokens[1].Contents)
		}
		return nil, nil, asm.expand(m, asm.substitute(tokens[2:]))
	}

	asm.warn(fmt.Sprintf("unknown directive .%s ignored", tokens[0].Contents))

	return nil, nil, nil
}

// bank selects the bank with the id in the first argument, creating it if
// necessary. the optional second and third arguments change the origin and
// size of the bank
func (asm *Assembler) bank(args []Token) error {
	if len(args) == 0 || len(args) > 3 {
		return curated.Errorf(DirectiveArgs, "BANK", "expecting an id with optional origin and size")
	}
	for _, a := range args {
		if a.Type != Number {
			return curated.Errorf(DirectiveArgs, "BANK", fmt.Sprintf("%s is not a number", a.Contents))
		}
	}

	b := asm.Bank(args[0].Num)
	if b == nil {
		b = NewBank(args[0].Num, 0, DefaultBankSize)
		asm.banks = append(asm.banks, b)
	}

	if len(args) > 1 {
		b.Origin = args[1].Num
	}
	if len(args) > 2 {
		if err := b.Resize(args[2].Num); err != nil {
			return err
		}
	}

	asm.current = b

	return nil
}

// storage emits the arguments of a .BYTE or .WORD directive. label
// references are returned as low byte or address fixups depending on the
// width
func (asm *Assembler) storage(args []Token, width int) ([]uint8, []Label, error) {
	var data []uint8
	var fixups []Label

	for i := 0; i < len(args); i++ {
		kind := LowByte
		if width == 2 {
			kind = Address
		}

		a := args[i]
		if a.Type == Directive && width == 1 {
			switch strings.ToUpper(a.Contents) {
			case "HIGH":
				kind = HighByte
			case "LOW":
			default:
				return nil, nil, curated.Errorf(DirectiveArgs, a.Contents, "not valid in .BYTE")
			}
			i++
			if i >= len(args) {
				return nil, nil, curated.Errorf(DirectiveArgs, a.Contents, "missing value")
			}
			a = args[i]
		}

		switch a.Type {
		case Number:
			v := a.Num
			if kind == HighByte {
				v >>= 8
			}
			data = append(data, uint8(v))
			if width == 2 {
				data = append(data, uint8(v>>8))
			}

		case LabelLink:
			fixups = append(fixups, Label{
				Name:   a.Contents,
				Kind:   kind,
				Bank:   asm.current,
				Offset: asm.current.Cursor() + len(data),
			})
			data = append(data, make([]uint8, width)...)

		default:
			return nil, nil, curated.Errorf(DirectiveArgs, "BYTE", fmt.Sprintf("unexpected %s", a.Contents))
		}
	}

	return data, fixups, nil
}
