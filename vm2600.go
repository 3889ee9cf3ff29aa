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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/BillySpelchan/VM2600/assembler"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/logger"
	"github.com/BillySpelchan/VM2600/modalflag"
	"github.com/BillySpelchan/VM2600/prefs"
)

// preferences consulted by the modes. can be set with the -prefs flag
type config struct {
	stepLimit prefs.Int
	scale     prefs.Int
	caption   prefs.Bool

	coll *prefs.Collection
}

func newConfig() (*config, error) {
	cfg := &config{
		coll: prefs.NewCollection(),
	}
	cfg.stepLimit.SetDefault(1000000)
	cfg.scale.SetDefault(2)
	cfg.caption.SetDefault(true)

	cfg.scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("tv.scale must be at least 1")
		}
		return nil
	})

	err := cfg.coll.Add("cpu.steplimit", &cfg.stepLimit)
	if err != nil {
		return nil, err
	}
	err = cfg.coll.Add("tv.scale", &cfg.scale)
	if err != nil {
		return nil, err
	}
	err = cfg.coll.Add("tv.caption", &cfg.caption)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func main() {
	// interrupts end the program immediately. modes that need to clean up
	// must ignore the signal themselves
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(0)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. returns the
// exit status for the process
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "ASSEMBLE", "DISASM", "RENDER", "VCS", "RANDOGRAM", "POLY", "STEP", "SCRIPT")
	prefsArg := md.AddString("prefs", "", "preferences of the form key::value; key::value")
	echoLog := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echoLog {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	cfg, err := newConfig()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		err = cfg.coll.ApplyCommandLine()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "vm2600", "unused preferences: %s", unused)
		}
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return 10
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, cfg)
	case "ASSEMBLE":
		err = assemble(md)
	case "DISASM":
		err = disasm(md)
	case "RENDER":
		err = render(md, cfg)
	case "VCS":
		err = vcs(md, cfg)
	case "RANDOGRAM":
		err = randogramMode(md, cfg)
	case "POLY":
		err = poly(md)
	case "STEP":
		err = step(md, cfg)
	case "SCRIPT":
		err = scriptMode(md, cfg)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 10
	}

	return 0
}

// readSource returns the lines of the file
func readSource(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n"), nil
}

// assembleFile assembles the single file named in the remaining arguments.
// errors and warnings are written to the output. VCS register names are
// predefined if symbols is true
func assembleFile(md *modalflag.Modes, verbose bool, symbols bool) (*assembler.Assembler, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("assembly file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	source, err := readSource(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	asm := assembler.NewAssembler(instructions.Definitions())
	asm.Verbose = verbose
	if symbols {
		asm.PredefineSymbols(addresses.Symbols())
	}

	status := asm.AssembleProgram(source)
	for _, w := range asm.Warnings() {
		fmt.Fprintf(md.Output, "warning: %s\n", w)
	}
	for _, e := range asm.Errors() {
		fmt.Fprintf(md.Output, "error: %s\n", e)
	}
	if status != assembler.Clean {
		return asm, fmt.Errorf("assembly finished with %s", status)
	}

	return asm, nil
}

// loadBanks copies every bank into the cartridge. banks are placed at their
// origin, wrapped to the size of the cartridge
func loadBanks(asm *assembler.Assembler, mem *cartridge.Cartridge) error {
	for _, b := range asm.Banks() {
		if err := mem.Load(b.Origin%cartridge.Size, b.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
