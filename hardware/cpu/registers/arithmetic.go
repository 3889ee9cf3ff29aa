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

package registers

// IsOverflow returns true if the result r of adding a and m should set the
// overflow flag. That is, a and m have the same sign and the sign of the
// result differs from both.
func IsOverflow(a, m, r uint8) bool {
	return (a^r)&(m^r)&0x80 == 0x80
}

// FromBCD converts a binary coded decimal value to binary. Nibbles that are
// not valid decimal digits are taken modulo ten.
func FromBCD(v uint8) int {
	return int((v>>4)&0x0f)%10*10 + int(v&0x0f)%10
}

// ToBCD converts a binary value to binary coded decimal. The carry return
// value is true if the value is greater than 99. Only the last two digits of
// the value are retained.
func ToBCD(n int) (bcd uint8, carry bool) {
	return uint8((n/10)%10<<4 | n%10), n > 99
}

// Result of an addition or subtraction.
type Result struct {
	Value    uint8
	Carry    bool
	Zero     bool
	Overflow bool
	Sign     bool
}

// Add a and m in binary, with the incoming carry.
func Add(a, m uint8, carry bool) Result {
	sum := int(a) + int(m)
	if carry {
		sum++
	}
	r := uint8(sum)
	return Result{
		Value:    r,
		Carry:    sum > 0xff,
		Zero:     r == 0,
		Overflow: IsOverflow(a, m, r),
		Sign:     r&0x80 == 0x80,
	}
}

// Subtract m from a in binary. The incoming carry is the inverse of the
// borrow, as it is on the 6502.
func Subtract(a, m uint8, carry bool) Result {
	return Add(a, ^m, carry)
}

// AddDecimal adds a and m as binary coded decimal values. The zero, sign and
// overflow flags are taken from the binary sum of the unpacked values. The
// carry is set if the decimal result is greater than 99.
func AddDecimal(a, m uint8, carry bool) Result {
	bin := Add(uint8(FromBCD(a)), uint8(FromBCD(m)), carry)

	sum := FromBCD(a) + FromBCD(m)
	if carry {
		sum++
	}

	bin.Value, bin.Carry = ToBCD(sum)
	return bin
}

// SubtractDecimal subtracts m from a as binary coded decimal values. The
// carry is set if no borrow was required. The zero and sign flags reflect the
// packed result and the overflow flag is taken from the equivalent binary
// subtraction.
func SubtractDecimal(a, m uint8, carry bool) Result {
	diff := FromBCD(a) - FromBCD(m)
	if !carry {
		diff--
	}

	res := Result{
		Carry:    diff >= 0,
		Overflow: Subtract(a, m, carry).Overflow,
	}
	if diff < 0 {
		diff += 100
	}

	res.Value, _ = ToBCD(diff)
	res.Zero = res.Value == 0
	res.Sign = res.Value&0x80 == 0x80

	return res
}
