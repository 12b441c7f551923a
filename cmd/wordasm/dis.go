package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/wordasm/program"
)

var (
	InputFlag = &cli.PathFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "word input file, or '-' for stdin",
		Value:   "-",
	}
	DumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "dump the decoded instruction values",
	}
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dis decodes a word stream and lists the instructions.
func Dis(ctx *cli.Context) (err error) {
	isa, format, err := settings(ctx)
	if err != nil {
		return
	}

	in, err := openInput(ctx.Path(InputFlag.Name))
	if err != nil {
		return
	}
	defer in.Close()

	words, err := program.ReadWords(in, format, isa.Width)
	if err != nil {
		return
	}

	insts, err := program.Disassemble(ctx.Context, isa, words)
	if err != nil {
		return
	}

	out := ctx.App.Writer
	for n, inst := range insts {
		_, err = fmt.Fprintf(out, "%#04x: %v  %v\n", n*program.WORD_BYTES, words[n].Hex(), inst)
		if err != nil {
			return
		}
		if ctx.Bool(DumpFlag.Name) {
			dumper.Fdump(out, inst)
		}
	}

	return
}

var DisCommand = &cli.Command{
	Name:   "dis",
	Usage:  "Disassemble a word stream",
	Action: Dis,
	Flags: []cli.Flag{
		InputFlag,
		DumpFlag,
	},
}
