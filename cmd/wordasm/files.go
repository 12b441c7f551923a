package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/wordasm/program"
)

func openInput(path string) (r io.ReadCloser, err error) {
	if path == "-" {
		r = io.NopCloser(os.Stdin)
		return
	}
	return os.Open(path)
}

func createOutput(path string) (w io.WriteCloser, err error) {
	if path == "-" {
		w = nopWriteCloser{os.Stdout}
		return
	}
	return os.Create(path)
}

// writeOutput calls write on out, then closes it. A close error is
// reported if write succeeded.
func writeOutput(out io.WriteCloser, write func(w io.Writer) error) (err error) {
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = write(out)
	return
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// settings reads the global isa and format flags.
func settings(ctx *cli.Context) (isa *program.ISA, format program.Format, err error) {
	isa, err = program.Lookup(ctx.String(IsaFlag.Name))
	if err != nil {
		return
	}

	format, err = program.ParseFormat(ctx.String(FormatFlag.Name))
	return
}
