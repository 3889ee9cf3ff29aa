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
	"unicode"
)

// TokenType identifies the role of a Token.
type TokenType int

// List of valid token types.
const (
	Error TokenType = iota
	Whitespace
	Directive
	LabelDeclaration
	LabelLink
	Opcode
	Number
	Immediate
	IndexX
	IndexY
	IndirectStart
	IndirectEnd
)

func (tt TokenType) String() string {
	switch tt {
	case Error:
		return "ERROR"
	case Whitespace:
		return "WHITESPACE"
	case Directive:
		return "DIRECTIVE"
	case LabelDeclaration:
		return "LABEL_DECLARATION"
	case LabelLink:
		return "LABEL_LINK"
	case Opcode:
		return "OPCODE"
	case Number:
		return "NUMBER"
	case Immediate:
		return "IMMEDIATE"
	case IndexX:
		return "INDEX_X"
	case IndexY:
		return "INDEX_Y"
	case IndirectStart:
		return "INDIRECT_START"
	case IndirectEnd:
		return "INDIRECT_END"
	}
	return "unknown token type"
}

// Token is a single lexical element of a line of source.
//
// Num holds the value of a Number token and the length of a Whitespace
// token. For all other token types it is zero.
type Token struct {
	Type     TokenType
	Contents string
	Num      int
}

func (tk Token) String() string {
	return fmt.Sprintf("%s %q %d", tk.Type, tk.Contents, tk.Num)
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isLabelRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits a single line of source into tokens. Whitespace and
// comments produce Whitespace tokens unless ignoreWhitespace is true.
//
// An Error token is always the last token in the list. Tokenizing stops at
// the first character that can not start a token.
func (asm *Assembler) Tokenize(line string, ignoreWhitespace bool) []Token {
	var tokens []Token

	src := []rune(line)
	i := 0

	for i < len(src) {
		r := src[i]

		switch {
		case isWhitespace(r):
			n := 0
			for i < len(src) && isWhitespace(src[i]) {
				n++
				i++
			}
			if !ignoreWhitespace {
				tokens = append(tokens, Token{Type: Whitespace, Contents: " ", Num: n})
			}
			continue

		case r == ';':
			if !ignoreWhitespace {
				comment := string(src[i:])
				tokens = append(tokens, Token{Type: Whitespace, Contents: comment, Num: len(src) - i})
			}
			return tokens

		case r == '#':
			tokens = append(tokens, Token{Type: Immediate, Contents: "#"})

		case r == '(':
			tokens = append(tokens, Token{Type: IndirectStart, Contents: "("})

		case r == ')':
			tokens = append(tokens, Token{Type: IndirectEnd, Contents: ")"})

		case r == ',':
			i++
			for i < len(src) && isWhitespace(src[i]) {
				i++
			}
			if i >= len(src) {
				return append(tokens, Token{Type: Error, Contents: "missing index register"})
			}
			switch unicode.ToUpper(src[i]) {
			case 'X':
				tokens = append(tokens, Token{Type: IndexX, Contents: ",X"})
			case 'Y':
				tokens = append(tokens, Token{Type: IndexY, Contents: ",Y"})
			default:
				return append(tokens, Token{Type: Error, Contents: fmt.Sprintf("unknown index register (%c)", src[i])})
			}

		case r == '.':
			s := i + 1
			for i+1 < len(src) && !isWhitespace(src[i+1]) {
				i++
			}
			tokens = append(tokens, Token{Type: Directive, Contents: string(src[s : i+1])})

		case r == '$' || r == '%' || unicode.IsDigit(r):
			s := i
			base := 10
			switch r {
			case '$':
				base = 16
				i++
			case '%':
				base = 2
				i++
			}
			d := i
			for i < len(src) && isLabelRune(src[i]) {
				i++
			}
			literal := string(src[s:i])
			n, err := strconv.ParseInt(string(src[d:i]), base, 32)
			if err != nil {
				return append(tokens, Token{Type: Error, Contents: fmt.Sprintf("invalid number (%s)", literal)})
			}
			tokens = append(tokens, Token{Type: Number, Contents: literal, Num: int(n)})
			continue

		case unicode.IsLetter(r):
			s := i
			for i < len(src) && isLabelRune(src[i]) {
				i++
			}
			word := string(src[s:i])

			if i < len(src) && src[i] == ':' {
				tokens = append(tokens, Token{Type: LabelDeclaration, Contents: word})
				break
			}

			if _, ok := asm.opcodes[strings.ToUpper(word)]; ok {
				tokens = append(tokens, Token{Type: Opcode, Contents: strings.ToUpper(word)})
			} else {
				tokens = append(tokens, Token{Type: LabelLink, Contents: word})
			}
			continue

		default:
			return append(tokens, Token{Type: Error, Contents: fmt.Sprintf("unexpected character (%c)", r)})
		}

		i++
	}

	return tokens
}
