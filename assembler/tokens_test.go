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

package assembler_test

import (
	"fmt"
	"testing"

	"github.com/BillySpelchan/VM2600/assembler"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/test"
)

func expectTokens(t *testing.T, tokens []assembler.Token, expected []assembler.Token) {
	t.Helper()
	if !test.ExpectEquality(t, len(tokens), len(expected), tokens) {
		return
	}
	for i := range tokens {
		test.ExpectEquality(t, tokens[i], expected[i], i)
	}
}

func TestTokenizer(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())

	tokens := asm.Tokenize("   ", false)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Whitespace, Contents: " ", Num: 3},
	})

	tokens = asm.Tokenize(".BANK $B", false)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Directive, Contents: "BANK"},
		{Type: assembler.Whitespace, Contents: " ", Num: 1},
		{Type: assembler.Number, Contents: "$B", Num: 11},
	})

	tokens = asm.Tokenize("Main:", false)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.LabelDeclaration, Contents: "Main"},
	})

	tokens = asm.Tokenize("\t CLD", false)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Whitespace, Contents: " ", Num: 2},
		{Type: assembler.Opcode, Contents: "CLD"},
	})

	tokens = asm.Tokenize("\t LDA #0 ; prepare to clear memory", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "LDA"},
		{Type: assembler.Immediate, Contents: "#"},
		{Type: assembler.Number, Contents: "0"},
	})

	tokens = asm.Tokenize("\t TAX", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "TAX"},
	})

	tokens = asm.Tokenize("clearLoop: STA 0,X ", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.LabelDeclaration, Contents: "clearLoop"},
		{Type: assembler.Opcode, Contents: "STA"},
		{Type: assembler.Number, Contents: "0"},
		{Type: assembler.IndexX, Contents: ",X"},
	})

	tokens = asm.Tokenize("\t BNE clearLoop", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "BNE"},
		{Type: assembler.LabelLink, Contents: "clearLoop"},
	})
}

func TestTokenizerComment(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())

	tokens := asm.Tokenize("NOP ; done", false)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "NOP"},
		{Type: assembler.Whitespace, Contents: " ", Num: 1},
		{Type: assembler.Whitespace, Contents: "; done", Num: 6},
	})
}

func TestTokenizerOperands(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())

	// lower case mnemonics are normalised. lower case index registers are
	// accepted and whitespace is allowed after the comma
	tokens := asm.Tokenize("lda ($10) , y", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "LDA"},
		{Type: assembler.IndirectStart, Contents: "("},
		{Type: assembler.Number, Contents: "$10", Num: 16},
		{Type: assembler.IndirectEnd, Contents: ")"},
		{Type: assembler.IndexY, Contents: ",Y"},
	})

	tokens = asm.Tokenize("LDA #%1010", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "LDA"},
		{Type: assembler.Immediate, Contents: "#"},
		{Type: assembler.Number, Contents: "%1010", Num: 10},
	})

	tokens = asm.Tokenize("LDA #.HIGH target", true)
	expectTokens(t, tokens, []assembler.Token{
		{Type: assembler.Opcode, Contents: "LDA"},
		{Type: assembler.Immediate, Contents: "#"},
		{Type: assembler.Directive, Contents: "HIGH"},
		{Type: assembler.LabelLink, Contents: "target"},
	})
}

func TestTokenizerErrors(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())

	for _, line := range []string{
		"LDA $1G",
		"LDA %102",
		"LDA 12a",
		"STA 0,Z",
		"STA 0,",
		"LDA @",
	} {
		tokens := asm.Tokenize(line, true)
		test.DemandSuccess(t, len(tokens) > 0, line)
		test.ExpectEquality(t, tokens[len(tokens)-1].Type, assembler.Error, line)
	}

	// tokenizing stops at the error
	tokens := asm.Tokenize("LDA ! 10", true)
	test.ExpectEquality(t, len(tokens), 2)
}

func TestTokenString(t *testing.T) {
	tk := assembler.Token{Type: assembler.Number, Contents: "$B", Num: 11}
	test.ExpectEquality(t, tk.String(), fmt.Sprintf("NUMBER %q 11", "$B"))
}
