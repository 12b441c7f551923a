package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/wordasm/program"
)

// Check validates the schema and code tables of every ISA.
func Check(ctx *cli.Context) (err error) {
	out := ctx.App.Writer
	for name := range program.Names() {
		var isa *program.ISA
		isa, err = program.Lookup(name)
		if err != nil {
			return
		}

		err = isa.Check()
		if err != nil {
			return fmt.Errorf("%v: %w", name, err)
		}

		fmt.Fprintf(out, "%v: %d formats, %d mnemonics ok\n", name, len(isa.Schema().Formats), len(isa.Mnemonics))
		if ctx.Bool(DumpFlag.Name) {
			dumper.Fdump(out, isa.Schema())
		}
	}

	return
}

var CheckCommand = &cli.Command{
	Name:   "check",
	Usage:  "Verify the field, code and immediate tables",
	Action: Check,
	Flags: []cli.Flag{
		DumpFlag,
	},
}
