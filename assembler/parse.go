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
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
)

// Parse a tokenized line and return the bytes it assembles to. The bytes are
// not written to the bank by Parse, except for lines that expand a macro.
//
// Label declarations and label references are recorded as a side effect.
// Label references assume that the bytes will be written at the current
// cursor of the current bank.
func (asm *Assembler) Parse(tokens []Token) ([]uint8, error) {
	data, fixups, err := asm.parse(tokens)
	if err != nil {
		return nil, err
	}
	asm.addLabels(fixups)
	return data, nil
}

// parse is the same as Parse except that label references are returned
// rather than recorded. they should be recorded with addLabels() once the
// bytes have been written
func (asm *Assembler) parse(tokens []Token) ([]uint8, []Label, error) {
	tokens = withoutWhitespace(tokens)

	if asm.recording != nil {
		if len(tokens) > 0 && tokens[0].Type == Directive && strings.EqualFold(tokens[0].Contents, "MEND") {
			asm.macros[asm.recording.name] = asm.recording
			asm.recording = nil
			return nil, nil, nil
		}
		asm.recording.record(tokens)
		return nil, nil, nil
	}

	for _, tk := range tokens {
		if tk.Type == Error {
			return nil, nil, curated.Errorf(BadToken, tk.Contents)
		}
	}

	if len(tokens) > 0 && tokens[0].Type == LabelDeclaration {
		asm.addLabel(Label{
			Name:   tokens[0].Contents,
			Kind:   TargetValue,
			Bank:   asm.current,
			Offset: asm.current.Cursor(),
			Value:  asm.current.Address(),
		})
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return nil, nil, nil
	}

	if tokens[0].Type == Directive {
		return asm.directive(tokens)
	}

	if tokens[0].Type != Opcode {
		return nil, nil, curated.Errorf(ExpectedOpcode, tokens[0].Contents)
	}

	return asm.instruction(asm.substitute(tokens))
}

func withoutWhitespace(tokens []Token) []Token {
	s := make([]Token, 0, len(tokens))
	for _, tk := range tokens {
		if tk.Type != Whitespace {
			s = append(s, tk)
		}
	}
	return s
}

// substitute returns a copy of the tokens with every label link that names a
// constant replaced by a number token
func (asm *Assembler) substitute(tokens []Token) []Token {
	s := make([]Token, len(tokens))
	for i, tk := range tokens {
		if tk.Type == LabelLink {
			if v, ok := asm.equates[tk.Contents]; ok {
				tk = Token{Type: Number, Contents: tk.Contents, Num: v}
			}
		}
		s[i] = tk
	}
	return s
}

// the addressing modes for a memory operand, indexed by none, X and Y
var (
	absoluteModes = [3]instructions.AddressingMode{
		instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
	}
	zeroPageModes = [3]instructions.AddressingMode{
		instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY,
	}
)

// index returns 0 for an empty list, 1 for an X index and 2 for a Y index
func index(tokens []Token) (int, bool) {
	switch len(tokens) {
	case 0:
		return 0, true
	case 1:
		switch tokens[0].Type {
		case IndexX:
			return 1, true
		case IndexY:
			return 2, true
		}
	}
	return 0, false
}

// instruction assembles a line beginning with an opcode token
func (asm *Assembler) instruction(tokens []Token) ([]uint8, []Label, error) {
	mnemonic := tokens[0].Contents
	modes := asm.opcodes[mnemonic]
	operand := tokens[1:]

	has := func(m instructions.AddressingMode) bool {
		_, ok := modes[m]
		return ok
	}

	var mode instructions.AddressingMode
	var value int

	// the label to be patched during linking. the offset is added later
	var fixup *Label

	malformed := curated.Errorf(MalformedOperand, mnemonic)

	switch {
	case len(operand) == 0:
		mode = instructions.Implied
		if !has(mode) && has(instructions.Accumulator) {
			mode = instructions.Accumulator
		}

	case operand[0].Type == LabelLink:
		if len(operand) == 1 && strings.EqualFold(operand[0].Contents, "A") && has(instructions.Accumulator) {
			mode = instructions.Accumulator
			break
		}

		if len(operand) == 1 && has(instructions.Relative) {
			mode = instructions.Relative
			fixup = &Label{Name: operand[0].Contents, Kind: Relative}
			break
		}

		idx, ok := index(operand[1:])
		if !ok {
			return nil, nil, malformed
		}
		mode = absoluteModes[idx]
		fixup = &Label{Name: operand[0].Contents, Kind: Address}
		if !has(mode) && has(zeroPageModes[idx]) {
			mode = zeroPageModes[idx]
			fixup.Kind = ZeroPage
		}

	case operand[0].Type == Number:
		n := operand[0].Num

		if len(operand) == 1 && has(instructions.Relative) {
			mode = instructions.Relative
			value = (n - (asm.current.Address() + 2)) & 0xff
			break
		}

		idx, ok := index(operand[1:])
		if !ok {
			return nil, nil, malformed
		}
		value = n
		mode = absoluteModes[idx]
		if n <= 0xff && has(zeroPageModes[idx]) {
			mode = zeroPageModes[idx]
		}

	case operand[0].Type == Immediate:
		mode = instructions.Immediate

		arg := operand[1:]
		kind := LowByte
		if len(arg) > 0 && arg[0].Type == Directive {
			switch strings.ToUpper(arg[0].Contents) {
			case "HIGH":
				kind = HighByte
			case "LOW":
			default:
				return nil, nil, curated.Errorf(DirectiveArgs, arg[0].Contents, "not valid in an immediate operand")
			}
			arg = arg[1:]
		}
		if len(arg) != 1 {
			return nil, nil, malformed
		}

		switch arg[0].Type {
		case Number:
			value = arg[0].Num
			if kind == HighByte {
				value >>= 8
			}
		case LabelLink:
			fixup = &Label{Name: arg[0].Contents, Kind: kind}
		default:
			return nil, nil, malformed
		}

	case operand[0].Type == IndirectStart:
		if len(operand) < 3 {
			return nil, nil, malformed
		}

		switch operand[1].Type {
		case Number:
			value = operand[1].Num
		case LabelLink:
			fixup = &Label{Name: operand[1].Contents, Kind: Address}
		default:
			return nil, nil, malformed
		}

		rest := operand[2:]
		switch {
		case len(rest) == 2 && rest[0].Type == IndexX && rest[1].Type == IndirectEnd:
			mode = instructions.IndexedIndirect
		case len(rest) == 1 && rest[0].Type == IndirectEnd:
			mode = instructions.Indirect
		case len(rest) == 2 && rest[0].Type == IndirectEnd && rest[1].Type == IndexY:
			mode = instructions.IndirectIndexed
		default:
			return nil, nil, malformed
		}

		// indexed indirect modes take a zero page operand
		if fixup != nil && mode.Bytes() == 2 {
			fixup.Kind = ZeroPage
		}

	default:
		return nil, nil, malformed
	}

	opcode, ok := modes[mode]
	if !ok {
		return nil, nil, curated.Errorf(UnknownMode, mnemonic, mode)
	}

	data := []uint8{opcode}
	switch mode.Bytes() {
	case 2:
		data = append(data, uint8(value))
	case 3:
		data = append(data, uint8(value), uint8(value>>8))
	}

	if fixup == nil {
		return data, nil, nil
	}
	fixup.Bank = asm.current
	fixup.Offset = asm.current.Cursor() + 1

	return data, []Label{*fixup}, nil
}
