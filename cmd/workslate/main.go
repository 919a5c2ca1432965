// Command workslate drives the WK-100 core: "workslate run" loads a ROM
// image and executes it, "workslate asm" drives the one-line assembler
// stand-alone. Grounded on the teacher's root main.go wiring flags onto a
// Bus/Cpu pair, replacing pixelgl.Run's frame loop with cobra subcommands
// over internal/workslate.System (§6 SUPPLEMENT).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maushammer/workslate-sim/internal/asm"
	"github.com/maushammer/workslate-sim/internal/config"
	"github.com/maushammer/workslate-sim/internal/factsfile"
	"github.com/maushammer/workslate-sim/internal/romimage"
	"github.com/maushammer/workslate-sim/internal/workslate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "workslate",
		Short: "Workslate WK-100 emulator and one-line assembler",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newAsmCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM image and run it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMachine(cfg)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&cfg.Trace, "trace", false, "emit per-instruction trace to standard error")
	flags.IntVar(&cfg.Skip, "skip", 0, "suppress the first N trace lines")
	flags.BoolVar(&cfg.CPU6800, "6800", false, "restrict CPU to 6800 opcodes")
	flags.BoolVar(&cfg.Mon, "mon", false, "start halted in monitor")
	flags.StringVar(&cfg.RomDir, "romdir", ".", "directory containing u15.bin/u16.bin")
	flags.StringVar(&cfg.Facts, "facts", "", "annotation file for trace labels")
	return cmd
}

func runMachine(cfg config.Config) error {
	cpuType := workslate.CPU6801
	if cfg.CPU6800 {
		cpuType = workslate.CPU6800
	}

	sys := workslate.NewSystem(cpuType, 0)
	if err := romimage.Load(cfg.RomDir, sys.Bus); err != nil {
		return err
	}

	var facts factsfile.Table
	if cfg.Facts != "" {
		f, err := os.Open(cfg.Facts)
		if err != nil {
			return fmt.Errorf("workslate: %w", err)
		}
		defer f.Close()
		facts, err = factsfile.Parse(f)
		if err != nil {
			return fmt.Errorf("workslate: %w", err)
		}
	}
	sys.Reset()
	if cfg.Mon {
		return nil
	}

	ctx := context.Background()
	sys.StartWallClock()
	defer sys.StopWallClock()

	out := bufio.NewWriter(os.Stderr)
	defer out.Flush()

	if !cfg.Trace {
		return sys.Run(ctx, 0)
	}

	seq := 0
	for !sys.CPU.Stopped() {
		if err := sys.CPU.Step(); err != nil {
			return fmt.Errorf("workslate: %w", err)
		}
		seq++
		if seq <= cfg.Skip {
			continue
		}
		if entries := sys.CPU.Trace.Entries(); len(entries) > 0 {
			fmt.Fprintln(out, workslate.FormatLine(seq, entries[len(entries)-1], facts))
		}
	}
	if sys.CPU.Fault != nil {
		return fmt.Errorf("workslate: %w", sys.CPU.Fault)
	}
	return nil
}

func newAsmCmd() *cobra.Command {
	var lower bool
	var cpu6800 bool
	var outPath string
	cmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble a 6800/6801 source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpuType := asm.CPU6801
			if cpu6800 {
				cpuType = asm.CPU6800
			}
			return assembleFile(args[0], outPath, lower, cpuType)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&lower, "lower", false, "allow lowercase symbol names")
	flags.BoolVar(&cpu6800, "6800", false, "restrict to 6800 mnemonics")
	flags.StringVarP(&outPath, "out", "o", "", "write the assembled image to FILE (default: FILE.bin)")
	return cmd
}

func assembleFile(path, outPath string, lower bool, cpuType asm.CPUType) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("workslate: %w", err)
	}
	defer f.Close()

	a := asm.NewAssembler(cpuType)
	a.Lower = lower

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if _, err := a.Assemble(sc.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("workslate: %w", err)
	}

	if outPath == "" {
		outPath = path + ".bin"
	}
	if err := os.WriteFile(outPath, a.Mem(), 0o644); err != nil {
		return fmt.Errorf("workslate: %w", err)
	}

	fmt.Fprintf(os.Stdout, "symbol table:\n")
	for _, sy := range a.Symbols() {
		if sy.Valid {
			fmt.Fprintf(os.Stdout, "  %-16s %04X\n", sy.Name, sy.Value)
		} else {
			fmt.Fprintf(os.Stdout, "  %-16s unresolved\n", sy.Name)
		}
	}
	return nil
}
