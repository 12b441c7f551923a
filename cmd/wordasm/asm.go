package main

import (
	"fmt"
	"io"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/wordasm/program"
)

var (
	OutputFlag = &cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "word output file, or '-' for stdout",
		Value:   "-",
	}
	ProfileFlag = &cli.BoolFlag{
		Name:  "profile",
		Usage: "write a CPU profile to the current directory",
	}
)

// Asm runs a Starlark script and writes the assembled words.
func Asm(ctx *cli.Context) (err error) {
	if ctx.Bool(ProfileFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	if ctx.Args().Len() != 1 {
		return fmt.Errorf("asm: expected one script, got %d arguments", ctx.Args().Len())
	}
	script := ctx.Args().First()

	isa, format, err := settings(ctx)
	if err != nil {
		return
	}

	prog := &program.Program{
		Verbose: ctx.Bool(VerboseFlag.Name),
		ISA:     isa,
	}

	err = prog.Load(script, nil)
	if err != nil {
		return
	}

	err = prog.Assemble(ctx.Context)
	if err != nil {
		return fmt.Errorf("%v: %w", script, err)
	}

	out, err := createOutput(ctx.Path(OutputFlag.Name))
	if err != nil {
		return
	}

	return writeOutput(out, func(w io.Writer) error {
		return prog.Write(w, format)
	})
}

var AsmCommand = &cli.Command{
	Name:      "asm",
	Usage:     "Assemble a Starlark instruction script",
	ArgsUsage: "SCRIPT",
	Description: "Runs SCRIPT with one builtin per mnemonic of the selected ISA " +
		"(e.g. add(1, 2, 3), fadd_s(1, 2, 3, rm=\"rne\")), then writes the words.",
	Action: Asm,
	Flags: []cli.Flag{
		OutputFlag,
		ProfileFlag,
	},
}
