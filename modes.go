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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"

	"github.com/BillySpelchan/VM2600/disassembly"
	"github.com/BillySpelchan/VM2600/hardware"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/cpu/trace"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/hardware/tia/polycounter"
	"github.com/BillySpelchan/VM2600/modalflag"
	"github.com/BillySpelchan/VM2600/randogram"
	"github.com/BillySpelchan/VM2600/script"
	"github.com/BillySpelchan/VM2600/statsview"
	"github.com/BillySpelchan/VM2600/television/imagetv"
	"github.com/BillySpelchan/VM2600/terminal/easyterm"
)

func assemble(md *modalflag.Modes) error {
	md.NewMode()

	out := md.AddString("o", "a.bin", "output file for the current bank")
	verbose := md.AddBool("v", false, "log every assembled line")
	dump := md.AddBool("dump", false, "print the first 256 bytes of memory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	asm, err := assembleFile(md, *verbose, true)
	if err != nil {
		return err
	}

	b := asm.CurrentBank()
	if err := os.WriteFile(*out, b.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "%s: %d bytes written to %s\n", b, b.Size(), *out)

	if *dump {
		mem := cartridge.NewCartridge()
		if err := loadBanks(asm, mem); err != nil {
			return err
		}
		start := b.Origin % cartridge.Size
		mem.Dump(md.Output, start, start+256, 16)
	}

	return nil
}

func run(md *modalflag.Modes, cfg *config) error {
	md.NewMode()

	limit := md.AddInt("limit", cfg.stepLimit.Get().(int), "maximum number of instructions (0 for no limit)")
	traceOutput := md.AddBool("trace", false, "trace every instruction")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write graph of final processor state to DOT file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output, "")
		defer stop()
	}

	asm, err := assembleFile(md, false, false)
	if err != nil {
		return err
	}

	mem := cartridge.NewCartridge()
	if err := loadBanks(asm, mem); err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.State.IP = uint16(asm.CurrentBank().Origin)

	if *traceOutput {
		err = trace.NewTracer(mc, md.Output).RunToBreak(*limit)
	} else {
		err = mc.RunToBreak(-1, *limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, mc.State)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &mc.State)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddInt("origin", hardware.CartridgeOrigin, "address of the first byte")
	length := md.AddInt("length", 0, "number of bytes to disassemble (0 for all)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		if *length > 0 && *length < len(data) {
			data = data[:*length]
		}

		dsm, err := disassembly.FromImage(data, uint16(*origin))
		if err != nil {
			return err
		}
		dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func render(md *modalflag.Modes, cfg *config) error {
	md.NewMode()

	dir := md.AddString("o", ".", "output directory")
	scale := md.AddInt("scale", cfg.scale.Get().(int), "image scaling")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	md.AdditionalHelp(fmt.Sprintf("available scenes: %s", strings.Join(sceneNames(), ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output, "")
		defer stop()
	}

	names := md.RemainingArgs()
	if len(names) == 0 {
		names = sceneNames()
	}

	// check scene names before starting any work
	for _, n := range names {
		if _, ok := scenes[strings.ToLower(n)]; !ok {
			return fmt.Errorf("unknown scene (%s)", n)
		}
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for _, n := range names {
		n := strings.ToLower(n)
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			imtv, err := renderScene(n)
			if err != nil {
				return err
			}
			imtv.Scale = *scale
			if cfg.caption.Get().(bool) {
				imtv.Caption = n
			}

			fn := filepath.Join(*dir, fmt.Sprintf("%s.png", n))
			if err := imtv.Save(fn); err != nil {
				return err
			}
			fmt.Fprintf(md.Output, "%s\n", fn)

			return nil
		})
	}

	return g.Wait()
}

func vcs(md *modalflag.Modes, cfg *config) error {
	md.NewMode()

	out := md.AddString("o", "vcs.png", "output image")
	scanlines := md.AddInt("scanlines", 262, "number of scanlines to run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	asm, err := assembleFile(md, false, true)
	if err != nil {
		return err
	}

	imtv := imagetv.NewImageTV(imagetv.DefaultScanlines)
	imtv.Scale = cfg.scale.Get().(int)
	if cfg.caption.Get().(bool) {
		imtv.Caption = filepath.Base(md.GetArg(0))
	}

	console := hardware.NewVCS(imtv)
	if err := console.AttachCartridge(asm.CurrentBank().Bytes()); err != nil {
		return err
	}
	if err := console.RunScanlines(*scanlines); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "frame %d, scanline %d: %s\n", console.Frame, console.Scanline, console.CPU)

	return imtv.Save(*out)
}

func randogramMode(md *modalflag.Modes, cfg *config) error {
	md.NewMode()

	out := md.AddString("o", "randogram.png", "output image")
	limit := md.AddInt("limit", cfg.stepLimit.Get().(int), "maximum number of instructions (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	asm, err := assembleFile(md, false, false)
	if err != nil {
		return err
	}

	mem := cartridge.NewCartridge()
	if err := loadBanks(asm, mem); err != nil {
		return err
	}

	src, err := randogram.Capture(cpu.NewCPU(mem), mem, uint16(asm.CurrentBank().Origin), *limit)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "%d values captured\n", src.Captured)

	var rg randogram.Randogram
	rg.Generate(src)

	caption := ""
	if cfg.caption.Get().(bool) {
		caption = filepath.Base(md.GetArg(0))
	}
	scale := cfg.scale.Get().(int)

	return imagetv.Save(*out, imagetv.Scaled(rg.Image(), scale, scale, caption))
}

func poly(md *modalflag.Modes) error {
	md.NewMode()

	minimum := md.AddInt("min", 256, "shortest run length to show")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "polycounter run lengths of at least %d\n", *minimum)
	for _, f := range polycounter.LongRuns(*minimum) {
		fmt.Fprintf(md.Output, "%d length is %d\n", f, polycounter.RunLength(f))
	}

	return nil
}

func step(md *modalflag.Modes, cfg *config) error {
	md.NewMode()
	md.AdditionalHelp("space or enter to step, r to run to BRK, q to quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	asm, err := assembleFile(md, false, false)
	if err != nil {
		return err
	}

	mem := cartridge.NewCartridge()
	if err := loadBanks(asm, mem); err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.State.IP = uint16(asm.CurrentBank().Origin)
	trc := trace.NewTracer(mc, md.Output)

	pt, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if err := pt.CBreakMode(); err != nil {
		return err
	}
	defer pt.CanonicalMode()

	// interrupts are ignored so that the terminal can be restored
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	cols, _ := pt.Size()
	fmt.Fprintf(md.Output, "%s\n%s\n", strings.Repeat("-", min(cols, 60)), mc.State)

	for !mc.AtBreak() {
		k, err := pt.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			if err := trc.Step(); err != nil {
				return err
			}
		case 'r', 'R':
			if err := trc.RunToBreak(cfg.stepLimit.Get().(int)); err != nil {
				return err
			}
		case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyEndOfFile, easyterm.KeyInterrupt:
			fmt.Fprintln(md.Output, mc.State)
			return nil
		}
	}

	fmt.Fprintf(md.Output, "BRK at %04x\n%s\n", mc.State.IP, mc.State)

	return nil
}

func scriptMode(md *modalflag.Modes, cfg *config) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	scr := script.NewScript(md.Output)
	defer scr.Close()
	scr.StepLimit = cfg.stepLimit.Get().(int)

	if err := scr.RunFile(md.GetArg(0)); err != nil {
		return err
	}

	if n := scr.Failures(); n > 0 {
		return fmt.Errorf("%d expectations failed", n)
	}
	fmt.Fprintln(md.Output, "all expectations met")

	return nil
}
