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

	"github.com/BillySpelchan/VM2600/curated"
)

// DefaultBankSize is the size of a bank created without an explicit size.
const DefaultBankSize = 4096

// Bank is a block of assembled bytes. Origin is the address the bank will
// occupy when seen by the CPU. Offsets are relative to the start of the bank.
type Bank struct {
	ID     int
	Origin int

	data   []uint8
	cursor int
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank(id int, origin int, size int) *Bank {
	return &Bank{
		ID:     id,
		Origin: origin,
		data:   make([]uint8, size),
	}
}

func (b *Bank) String() string {
	return fmt.Sprintf("bank %d: origin %#04x size %d", b.ID, b.Origin, len(b.data))
}

// Size returns the number of bytes in the bank.
func (b *Bank) Size() int {
	return len(b.data)
}

// Resize changes the size of the bank. Existing bytes are kept up to the
// smaller of the old and new sizes. The cursor is clamped to the new size.
func (b *Bank) Resize(size int) error {
	if size <= 0 {
		return curated.Errorf(BankSize, b.ID, size)
	}
	d := make([]uint8, size)
	copy(d, b.data)
	b.data = d
	b.cursor = min(b.cursor, size)
	return nil
}

// Cursor returns the offset at which the next byte will be written.
func (b *Bank) Cursor() int {
	return b.cursor
}

// Address returns the CPU address at which the next byte will be written.
func (b *Bank) Address() int {
	return b.Origin + b.cursor
}

// Seek moves the cursor to the CPU address.
func (b *Bank) Seek(address int) error {
	offset := address - b.Origin
	if offset < 0 || offset >= len(b.data) {
		return curated.Errorf(BankRange, b.ID, address)
	}
	b.cursor = offset
	return nil
}

// Write bytes at the cursor and advance the cursor. Nothing is written if the
// bytes do not fit in the bank.
func (b *Bank) Write(data ...uint8) error {
	if b.cursor+len(data) > len(b.data) {
		return curated.Errorf(BankRange, b.ID, b.Origin+len(b.data))
	}
	copy(b.data[b.cursor:], data)
	b.cursor += len(data)
	return nil
}

// WriteAt writes a single byte at the offset. The cursor is not changed.
func (b *Bank) WriteAt(offset int, data uint8) error {
	if offset < 0 || offset >= len(b.data) {
		return curated.Errorf(BankRange, b.ID, b.Origin+offset)
	}
	b.data[offset] = data
	return nil
}

// Read the byte at the offset.
func (b *Bank) Read(offset int) (uint8, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, curated.Errorf(BankRange, b.ID, b.Origin+offset)
	}
	return b.data[offset], nil
}

// Bytes returns a copy of the bank's contents.
func (b *Bank) Bytes() []uint8 {
	c := make([]uint8, len(b.data))
	copy(c, b.data)
	return c
}
