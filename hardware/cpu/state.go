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
	"fmt"
	"strconv"
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu/registers"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
	"github.com/BillySpelchan/VM2600/logger"
)

// Sentinel errors returned by ProcessorState.Lookup().
const (
	UnknownRegister = "cpu: unknown register or memory request (%s)"
	NoMemory        = "cpu: no memory to satisfy request (%s)"
)

// ProcessorState is the visible state of the CPU. It is a value type so
// copying it gives a snapshot.
type ProcessorState struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8

	// IP is the address of the next instruction to execute. IPNext is the
	// address of the instruction after that and is only meaningful during
	// the execution of an instruction, when flow instructions change it.
	IP     uint16
	IPNext uint16

	Flags registers.Status

	// number of cycles executed since reset
	Tick uint64
}

func (ps ProcessorState) String() string {
	return fmt.Sprintf("IP=%04x A=%02x X=%02x Y=%02x SP=%02x %s=%s",
		ps.IP, ps.A, ps.X, ps.Y, ps.SP, ps.Flags.Label(), ps.Flags)
}

// flag names recognised by Lookup()
var flagNames = map[string]registers.Status{
	"C": registers.Carry,
	"Z": registers.Zero,
	"I": registers.InterruptDisable,
	"D": registers.DecimalMode,
	"B": registers.Break,
	"V": registers.Overflow,
	"N": registers.Sign,
}

// Lookup returns the value of the register, flag or memory location named.
// Names are case-insensitive:
//
//	A or ACC, X, Y, IP, S or SP, FLAGS
//	C, Z, I, D, B, V, N   (value is 1 or 0)
//	M<hex>                (the byte at the address, mem must not be nil)
func (ps ProcessorState) Lookup(name string, mem cpubus.Memory) (int, error) {
	reg := strings.ToUpper(strings.TrimSpace(name))

	switch reg {
	case "A", "ACC":
		return int(ps.A), nil
	case "X":
		return int(ps.X), nil
	case "Y":
		return int(ps.Y), nil
	case "IP":
		return int(ps.IP), nil
	case "S", "SP":
		return int(ps.SP), nil
	case "FLAGS":
		return int(ps.Flags), nil
	}

	if f, ok := flagNames[reg]; ok {
		if ps.Flags.Is(f) {
			return 1, nil
		}
		return 0, nil
	}

	if len(reg) > 1 && reg[0] == 'M' {
		addr, err := strconv.ParseUint(reg[1:], 16, 16)
		if err != nil {
			return 0, curated.Errorf(UnknownRegister, name)
		}
		if mem == nil {
			return 0, curated.Errorf(NoMemory, name)
		}
		return int(mem.Read(uint16(addr))), nil
	}

	return 0, curated.Errorf(UnknownRegister, name)
}

// CheckState returns true if the named value is equal to expected. Flags
// compare as true if both the flag and expected are non-zero, or both are
// zero. Unknown names are logged and return false.
func (ps ProcessorState) CheckState(name string, expected int, mem cpubus.Memory) bool {
	v, err := ps.Lookup(name, mem)
	if err != nil {
		logger.Log(logger.Allow, "cpu", err)
		return false
	}

	if _, ok := flagNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return (v > 0) == (expected > 0)
	}

	return v == expected
}
