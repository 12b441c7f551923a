// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/wordasm/translate"
)

var (
	IsaFlag = &cli.StringFlag{
		Name:    "isa",
		Usage:   "instruction set (mips, riscv)",
		Value:   "riscv",
		EnvVars: []string{"WORDASM_ISA"},
	}
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "word format (hex, bin, le, be)",
		Value: "hex",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log each instruction",
	}
	LangFlag = &cli.StringFlag{
		Name:  "lang",
		Usage: "message language, instead of the system locale",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "wordasm"
	app.Usage = "instruction word assembler"
	app.Description = "Assembles Starlark instruction scripts to MIPS or RISC-V machine words, and back."
	app.Flags = []cli.Flag{
		IsaFlag,
		FormatFlag,
		VerboseFlag,
		LangFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		lang := ctx.String(LangFlag.Name)
		if len(lang) == 0 {
			return nil
		}
		return translate.SetLanguage(lang)
	}
	app.Commands = []*cli.Command{
		AsmCommand,
		DisCommand,
		CheckCommand,
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			_, _ = fmt.Fprintln(os.Stderr, "wordasm: interrupted")
			os.Exit(130)
		}
		_, _ = fmt.Fprintf(os.Stderr, "wordasm: %v\n", err)
		os.Exit(1)
	}
}
