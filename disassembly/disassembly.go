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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address  uint16
	ByteCode []uint8
	Text     string
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x: %s", e.Address, e.Text)
}

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// Disassembly is the result of disassembling a region of memory.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles length bytes starting at origin. The final
// instruction may extend beyond the region.
func FromMemory(mem cpubus.Memory, origin uint16, length int) *Disassembly {
	mc := cpu.NewCPU(mem)
	dsm := &Disassembly{}

	end := int(origin) + length
	for a := int(origin); a < end; {
		addr := uint16(a)
		defn := mc.Definition(mem.Read(addr))

		e := Entry{
			Address: addr,
			Text:    mc.Disassemble(addr),
		}
		for i := 0; i < defn.Bytes; i++ {
			e.ByteCode = append(e.ByteCode, mem.Read(addr+uint16(i)))
		}
		dsm.Entries = append(dsm.Entries, e)

		a += defn.Bytes
	}

	return dsm
}

// FromImage loads the binary image into memory at origin and disassembles
// all of it.
func FromImage(data []uint8, origin uint16) (*Disassembly, error) {
	mem := cartridge.NewCartridge()
	if err := mem.Load(int(origin)%cartridge.Size, data); err != nil {
		return nil, err
	}
	return FromMemory(mem, origin, len(data)), nil
}

// Write the disassembly to output.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, e := range dsm.Entries {
		dsm.WriteLine(output, attr, e)
	}
}

// WriteLine writes a single entry to output.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) {
	if attr.ByteCode {
		b := make([]string, len(e.ByteCode))
		for i, v := range e.ByteCode {
			b[i] = fmt.Sprintf("%02x", v)
		}
		fmt.Fprintf(output, "%04x: %-8s  %s\n", e.Address, strings.Join(b, " "), strings.TrimSpace(e.Text))
		return
	}
	fmt.Fprintf(output, "%04x: %s\n", e.Address, strings.TrimSpace(e.Text))
}
