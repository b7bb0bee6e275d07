package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	dap "github.com/qri-io/dap-go"
)

type normalizeConfig struct {
	*cli.Command
	Shape string `cli:"name=shape aliases=s desc='comma-separated axis lengths, eg 5,7'"`
}

// NormalizeCommand returns the normalize subcommand.
func NormalizeCommand() *cli.Command {
	cfg := &normalizeConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "normalize").
		WithSynopsis("normalize --shape <dims> <hyperslab> - Resolve a hyperslab against an array shape").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *normalizeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one hyperslab argument", cli.ErrUsage)
	}

	shape, err := parseShape(cfg.Shape)
	if err != nil {
		return err
	}
	expr, err := dap.ParseHyperslab(args[0])
	if err != nil {
		return err
	}
	fixed, err := dap.FixSlice(expr, shape)
	if err != nil {
		return err
	}

	fmt.Fprintln(cc.Out, dap.Hyperslab(fixed))
	return nil
}
