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

package cpu

import (
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/cpu/registers"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
	"github.com/BillySpelchan/VM2600/logger"
)

// effect is the executable part of an instruction.
type effect func(opd operand)

// bind returns the effect function for the operator.
func (mc *CPU) bind(op instructions.Operator) effect {
	switch op {
	case instructions.Nop:
		return func(operand) {}

	case instructions.Clc:
		return mc.flag(registers.Carry, false)
	case instructions.Sec:
		return mc.flag(registers.Carry, true)
	case instructions.Cld:
		return mc.flag(registers.DecimalMode, false)
	case instructions.Sed:
		return mc.flag(registers.DecimalMode, true)
	case instructions.Cli:
		return mc.flag(registers.InterruptDisable, false)
	case instructions.Sei:
		return mc.flag(registers.InterruptDisable, true)
	case instructions.Clv:
		return mc.flag(registers.Overflow, false)

	case instructions.Lda:
		return mc.load(&mc.State.A)
	case instructions.Ldx:
		return mc.load(&mc.State.X)
	case instructions.Ldy:
		return mc.load(&mc.State.Y)

	case instructions.Sta:
		return mc.store(&mc.State.A)
	case instructions.Stx:
		return mc.store(&mc.State.X)
	case instructions.Sty:
		return mc.store(&mc.State.Y)

	case instructions.Tax:
		return mc.transfer(&mc.State.A, &mc.State.X)
	case instructions.Tay:
		return mc.transfer(&mc.State.A, &mc.State.Y)
	case instructions.Txa:
		return mc.transfer(&mc.State.X, &mc.State.A)
	case instructions.Tya:
		return mc.transfer(&mc.State.Y, &mc.State.A)
	case instructions.Tsx:
		return mc.transfer(&mc.State.SP, &mc.State.X)
	case instructions.Txs:
		// does not affect status register
		return func(operand) {
			mc.State.SP = mc.State.X
		}

	case instructions.Inx:
		return mc.step(&mc.State.X, 1)
	case instructions.Iny:
		return mc.step(&mc.State.Y, 1)
	case instructions.Dex:
		return mc.step(&mc.State.X, 0xff)
	case instructions.Dey:
		return mc.step(&mc.State.Y, 0xff)

	case instructions.Inc:
		return mc.modify(func(v uint8) uint8 { return v + 1 })
	case instructions.Dec:
		return mc.modify(func(v uint8) uint8 { return v - 1 })

	case instructions.Asl:
		return mc.modify(func(v uint8) uint8 {
			mc.State.Flags.Set(registers.Carry, v&0x80 == 0x80)
			return v << 1
		})
	case instructions.Lsr:
		return mc.modify(func(v uint8) uint8 {
			mc.State.Flags.Set(registers.Carry, v&0x01 == 0x01)
			return v >> 1
		})
	case instructions.Rol:
		return mc.modify(func(v uint8) uint8 {
			r := v << 1
			if mc.State.Flags.Is(registers.Carry) {
				r |= 0x01
			}
			mc.State.Flags.Set(registers.Carry, v&0x80 == 0x80)
			return r
		})
	case instructions.Ror:
		return mc.modify(func(v uint8) uint8 {
			r := v >> 1
			if mc.State.Flags.Is(registers.Carry) {
				r |= 0x80
			}
			mc.State.Flags.Set(registers.Carry, v&0x01 == 0x01)
			return r
		})

	case instructions.And:
		return mc.logic(func(a, v uint8) uint8 { return a & v })
	case instructions.Ora:
		return mc.logic(func(a, v uint8) uint8 { return a | v })
	case instructions.Eor:
		return mc.logic(func(a, v uint8) uint8 { return a ^ v })

	case instructions.Bit:
		return func(opd operand) {
			mc.State.Flags.Set(registers.Zero, mc.State.A&opd.value == 0)
			mc.State.Flags.Set(registers.Sign, opd.value&0x80 == 0x80)
			mc.State.Flags.Set(registers.Overflow, opd.value&0x40 == 0x40)
		}

	case instructions.Cmp:
		return mc.compare(&mc.State.A)
	case instructions.Cpx:
		return mc.compare(&mc.State.X)
	case instructions.Cpy:
		return mc.compare(&mc.State.Y)

	case instructions.Adc:
		return mc.arithmetic(registers.Add, registers.AddDecimal)
	case instructions.Sbc:
		return mc.arithmetic(registers.Subtract, registers.SubtractDecimal)

	case instructions.Bcc:
		return mc.branch(registers.Carry, false)
	case instructions.Bcs:
		return mc.branch(registers.Carry, true)
	case instructions.Bne:
		return mc.branch(registers.Zero, false)
	case instructions.Beq:
		return mc.branch(registers.Zero, true)
	case instructions.Bpl:
		return mc.branch(registers.Sign, false)
	case instructions.Bmi:
		return mc.branch(registers.Sign, true)
	case instructions.Bvc:
		return mc.branch(registers.Overflow, false)
	case instructions.Bvs:
		return mc.branch(registers.Overflow, true)

	case instructions.Jmp:
		return func(opd operand) {
			mc.State.IPNext = opd.address
		}

	case instructions.Jsr:
		// the address pushed is that of the last byte of the JSR instruction
		return func(opd operand) {
			ret := mc.State.IPNext - 1
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.State.IPNext = opd.address
		}

	case instructions.Rts:
		return func(operand) {
			lo := mc.pull()
			hi := mc.pull()
			mc.State.IPNext = ((uint16(hi) << 8) | uint16(lo)) + 1
		}

	case instructions.Pha:
		return func(operand) {
			mc.push(mc.State.A)
		}
	case instructions.Php:
		return func(operand) {
			mc.push(uint8(mc.State.Flags))
		}
	case instructions.Pla:
		return func(operand) {
			mc.State.A = mc.pull()
			mc.State.Flags.SetZeroSign(mc.State.A)
		}
	case instructions.Plp:
		return func(operand) {
			mc.State.Flags = registers.Status(mc.pull())
		}

	case instructions.Brk:
		// BRK is one byte long but the return address skips the byte after
		// the opcode
		return func(operand) {
			ret := mc.State.IP + 2
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.push(uint8(mc.State.Flags | registers.Break))
			mc.State.Flags.Set(registers.InterruptDisable, true)
			mc.State.IPNext = mc.read16Bit(cpubus.IRQ)
		}

	case instructions.Rti:
		return func(operand) {
			mc.State.Flags = registers.Status(mc.pull())
			lo := mc.pull()
			hi := mc.pull()
			mc.State.IPNext = (uint16(hi) << 8) | uint16(lo)
		}
	}

	return mc.future
}

// future is the effect of every opcode that is not assigned to an
// instruction.
func (mc *CPU) future(operand) {
	logger.Logf(logger.Allow, "cpu", "future expansion operation $%02x called at %#04x",
		mc.mem.Read(mc.State.IP), mc.State.IP)
}

func (mc *CPU) flag(f registers.Status, set bool) effect {
	return func(operand) {
		mc.State.Flags.Set(f, set)
	}
}

func (mc *CPU) load(r *uint8) effect {
	return func(opd operand) {
		*r = opd.value
		mc.State.Flags.SetZeroSign(*r)
	}
}

func (mc *CPU) store(r *uint8) effect {
	return func(opd operand) {
		mc.mem.Write(opd.address, *r)
	}
}

func (mc *CPU) transfer(from *uint8, to *uint8) effect {
	return func(operand) {
		*to = *from
		mc.State.Flags.SetZeroSign(*to)
	}
}

// step adds n to the register. decrement by adding 0xff.
func (mc *CPU) step(r *uint8, n uint8) effect {
	return func(operand) {
		*r += n
		mc.State.Flags.SetZeroSign(*r)
	}
}

// modify is used by the read-modify-write instructions. the result is
// written to memory or to the accumulator as appropriate.
func (mc *CPU) modify(f func(v uint8) uint8) effect {
	return func(opd operand) {
		r := f(opd.value)
		mc.State.Flags.SetZeroSign(r)
		if opd.accumulator {
			mc.State.A = r
		} else {
			mc.mem.Write(opd.address, r)
		}
	}
}

func (mc *CPU) logic(f func(a, v uint8) uint8) effect {
	return func(opd operand) {
		mc.State.A = f(mc.State.A, opd.value)
		mc.State.Flags.SetZeroSign(mc.State.A)
	}
}

// compare is the same in decimal mode as it is in binary mode.
func (mc *CPU) compare(r *uint8) effect {
	return func(opd operand) {
		mc.State.Flags.Set(registers.Carry, *r >= opd.value)
		mc.State.Flags.SetZeroSign(*r - opd.value)
	}
}

func (mc *CPU) arithmetic(binary, decimal func(a, m uint8, carry bool) registers.Result) effect {
	return func(opd operand) {
		f := binary
		if mc.State.Flags.Is(registers.DecimalMode) {
			f = decimal
		}

		r := f(mc.State.A, opd.value, mc.State.Flags.Is(registers.Carry))
		mc.State.A = r.Value
		mc.State.Flags.Set(registers.Carry, r.Carry)
		mc.State.Flags.Set(registers.Zero, r.Zero)
		mc.State.Flags.Set(registers.Overflow, r.Overflow)
		mc.State.Flags.Set(registers.Sign, r.Sign)
	}
}

// branch if the flag is in the required state. a taken branch costs one
// cycle and another if the target is in a different page to the next
// instruction.
func (mc *CPU) branch(f registers.Status, set bool) effect {
	return func(opd operand) {
		if mc.State.Flags.Is(f) != set {
			return
		}
		mc.State.Tick++
		target := mc.State.IPNext + uint16(int8(opd.value))
		mc.pageCheck(mc.State.IPNext, target)
		mc.State.IPNext = target
	}
}
