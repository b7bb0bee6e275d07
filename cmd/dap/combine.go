package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	dap "github.com/qri-io/dap-go"
)

type combineConfig struct {
	*cli.Command
}

// CombineCommand returns the combine subcommand.
func CombineCommand() *cli.Command {
	cfg := &combineConfig{}
	return cli.NewCommandAt(&cfg.Command, "combine").
		WithSynopsis("combine <hyperslab> <hyperslab> - Combine two sequentially applied hyperslabs").
		WithRun(cfg.run)
}

func (cfg *combineConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected exactly two hyperslab arguments", cli.ErrUsage)
	}

	expr1, err := dap.ParseHyperslab(args[0])
	if err != nil {
		return err
	}
	expr2, err := dap.ParseHyperslab(args[1])
	if err != nil {
		return err
	}
	combined, err := dap.CombineSlices(expr1, expr2)
	if err != nil {
		return err
	}

	fmt.Fprintln(cc.Out, dap.Hyperslab(combined))
	return nil
}
