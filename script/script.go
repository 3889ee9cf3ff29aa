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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/BillySpelchan/VM2600/assembler"
	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/hardware/tia"
	"github.com/BillySpelchan/VM2600/logger"
)

// ScriptError wraps errors raised by a running script.
const ScriptError = "script: %v"

// DefaultStepLimit is the step limit for run() when a limit is not given.
const DefaultStepLimit = 1000000

// Script is a Lua interpreter with functions for driving the emulation.
type Script struct {
	L *lua.LState

	asm *assembler.Assembler
	mem *cartridge.Cartridge
	mc  *cpu.CPU
	tia *tia.TIA

	output   io.Writer
	failures int

	// step limit used by run() when a limit is not given
	StepLimit int
}

// NewScript is the preferred method of initialisation for the Script type.
// Close() should be called when the script is no longer needed.
func NewScript(output io.Writer) *Script {
	scr := &Script{
		L:         lua.NewState(),
		asm:       assembler.NewAssembler(instructions.Definitions()),
		mem:       cartridge.NewCartridge(),
		tia:       tia.NewTIA(),
		output:    output,
		StepLimit: DefaultStepLimit,
	}
	scr.mc = cpu.NewCPU(scr.mem)
	scr.asm.PredefineSymbols(addresses.Symbols())

	for name, fn := range map[string]lua.LGFunction{
		"print":      scr.print,
		"assemble":   scr.assemble,
		"run":        scr.run,
		"step":       scr.step,
		"reg":        scr.reg,
		"check":      scr.check,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"tia":        scr.tiaWrite,
		"clock":      scr.clock,
		"scanline":   scr.scanline,
		"collisions": scr.collisions,
		"expect":     scr.expect,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// CPU returns the CPU used by the script.
func (scr *Script) CPU() *cpu.CPU {
	return scr.mc
}

// Failures returns the number of failed expectations.
func (scr *Script) Failures() int {
	return scr.failures
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) assemble(L *lua.LState) int {
	var source []string

	switch v := L.CheckAny(1).(type) {
	case lua.LString:
		source = strings.Split(string(v), "\n")
	case *lua.LTable:
		v.ForEach(func(_ lua.LValue, l lua.LValue) {
			source = append(source, l.String())
		})
	default:
		L.ArgError(1, "string or table expected")
		return 0
	}

	status := scr.asm.AssembleProgram(source)
	for _, e := range scr.asm.Errors() {
		fmt.Fprintln(scr.output, e)
	}

	for _, b := range scr.asm.Banks() {
		if err := scr.mem.Load(b.Origin%cartridge.Size, b.Bytes()); err != nil {
			L.RaiseError("%v", err)
		}
	}

	scr.mc.Reset()

	L.Push(lua.LString(status.String()))
	L.Push(lua.LNumber(len(scr.asm.Errors())))
	return 2
}

func (scr *Script) run(L *lua.LState) int {
	start := L.OptInt(1, -1)
	limit := L.OptInt(2, scr.StepLimit)
	if err := scr.mc.RunToBreak(start, limit); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	d := scr.mc.Disassemble(scr.mc.State.IP)
	if err := scr.mc.Step(); err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(d))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	v, err := scr.mc.State.Lookup(L.CheckString(1), scr.mem)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) check(L *lua.LState) int {
	L.Push(lua.LBool(scr.mc.State.CheckState(L.CheckString(1), L.CheckInt(2), scr.mem)))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mem.Read(uint16(L.CheckInt(1)))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.mem.Write(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

// register returns the address of the register in the first argument. the
// register is named or given as a number
func register(L *lua.LState, lookup func(string) (uint16, bool)) uint16 {
	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		return uint16(v)
	case lua.LString:
		if a, ok := lookup(string(v)); ok {
			return a
		}
		L.ArgError(1, fmt.Sprintf("unknown register %s", v))
	default:
		L.ArgError(1, "register name or address expected")
	}
	return 0
}

func (scr *Script) tiaWrite(L *lua.LState) int {
	reg := register(L, addresses.LookupWrite)
	scr.tia.Write(reg, uint8(L.CheckInt(2)))
	return 0
}

func (scr *Script) clock(L *lua.LState) int {
	if err := scr.tia.RunToClock(L.CheckInt(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) scanline(L *lua.LState) int {
	scr.tia.RenderScanline()
	t := L.NewTable()
	for i, p := range scr.tia.Scanline {
		t.RawSetInt(i+1, lua.LNumber(p))
	}
	L.Push(t)
	return 1
}

func (scr *Script) collisions(L *lua.LState) int {
	reg := register(L, addresses.LookupRead)
	L.Push(lua.LNumber(scr.tia.Read(reg)))
	return 1
}

func (scr *Script) expect(L *lua.LState) int {
	if !L.ToBool(1) {
		scr.failures++
		msg := L.OptString(2, "expectation failed")
		where := L.Where(1)
		fmt.Fprintf(scr.output, "FAIL: %s%s\n", where, msg)
		logger.Logf(logger.Allow, "script", "%s%s", where, msg)
	}
	return 0
}
