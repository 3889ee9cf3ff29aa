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
	"slices"
)

// LabelKind says how a label entry is used during linking.
type LabelKind int

// List of valid label kinds. TargetValue entries are declarations. All other
// kinds are fixups to be patched with the declared value.
const (
	TargetValue LabelKind = iota
	Relative
	Address
	HighByte
	LowByte
	ZeroPage
)

func (k LabelKind) String() string {
	switch k {
	case TargetValue:
		return "target"
	case Relative:
		return "relative"
	case Address:
		return "address"
	case HighByte:
		return "high byte"
	case LowByte:
		return "low byte"
	case ZeroPage:
		return "zero page"
	}
	return "unknown label kind"
}

// Label is a single declaration of, or reference to, a named label.
//
// For a TargetValue entry, Value is the CPU address of the declaration. For
// fixups, Offset is the location in Bank that needs patching.
type Label struct {
	Name   string
	Kind   LabelKind
	Bank   *Bank
	Offset int
	Value  int
}

func (l Label) String() string {
	if l.Kind == TargetValue {
		return fmt.Sprintf("%s: %s %#04x", l.Name, l.Kind, l.Value)
	}
	return fmt.Sprintf("%s: %s fixup at bank %d offset %d", l.Name, l.Kind, l.Bank.ID, l.Offset)
}

func (asm *Assembler) addLabel(l Label) {
	asm.labels[l.Name] = append(asm.labels[l.Name], l)
}

func (asm *Assembler) addLabels(labels []Label) {
	for _, l := range labels {
		asm.addLabel(l)
	}
}

// Link resolves every label reference recorded so far. A label with no
// declaration is an error. A label declared more than once is a warning and
// the last declaration is used.
func (asm *Assembler) Link() (errors []string, warnings []string) {
	names := make([]string, 0, len(asm.labels))
	for n := range asm.labels {
		names = append(names, n)
	}
	slices.Sort(names)

	for _, n := range names {
		entries := asm.labels[n]

		var target *Label
		declarations := 0
		for i := range entries {
			if entries[i].Kind == TargetValue {
				target = &entries[i]
				declarations++
			}
		}

		if target == nil {
			errors = append(errors, fmt.Sprintf("no target for label %s", n))
			continue
		}
		if declarations > 1 {
			warnings = append(warnings, fmt.Sprintf("label %s declared %d times, using last declaration (%#04x)", n, declarations, target.Value))
		}

		for _, e := range entries {
			if e.Kind == TargetValue {
				continue
			}
			if w, err := asm.patch(e, target.Value); err != nil {
				errors = append(errors, err.Error())
			} else if w != "" {
				warnings = append(warnings, w)
			}
		}
	}

	return errors, warnings
}

// patch a single fixup site with the target value. returns a warning string
// if the patch was made but might not be what was intended
func (asm *Assembler) patch(fixup Label, target int) (string, error) {
	var warning string

	switch fixup.Kind {
	case Relative:
		site := fixup.Bank.Origin + fixup.Offset
		distance := target - (site + 1)
		if distance < -128 || distance > 127 {
			warning = fmt.Sprintf("branch to %s out of range (%d)", fixup.Name, distance)
		}
		return warning, fixup.Bank.WriteAt(fixup.Offset, uint8(distance&0xff))
	case HighByte:
		return warning, fixup.Bank.WriteAt(fixup.Offset, uint8((target/256)&0xff))
	case LowByte, ZeroPage:
		if fixup.Kind == ZeroPage && target > 0xff {
			warning = fmt.Sprintf("label %s (%#04x) used as a zero page address", fixup.Name, target)
		}
		return warning, fixup.Bank.WriteAt(fixup.Offset, uint8(target&0xff))
	case Address:
		if err := fixup.Bank.WriteAt(fixup.Offset, uint8(target&0xff)); err != nil {
			return warning, err
		}
		return warning, fixup.Bank.WriteAt(fixup.Offset+1, uint8((target>>8)&0xff))
	}

	return warning, nil
}
