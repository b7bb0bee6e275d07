package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	dap "github.com/qri-io/dap-go"
)

type varsConfig struct {
	*cli.Command
	Dataset string `cli:"name=dataset aliases=d desc='path to a dataset document (.json, optionally gzipped)'"`
	Color   bool   `cli:"name=color desc='force colored output'"`
}

// VarsCommand returns the vars subcommand.
func VarsCommand() *cli.Command {
	cfg := &varsConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "vars").
		WithSynopsis("vars --dataset <file> - List the variables of a dataset document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *varsConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: vars takes no arguments", cli.ErrUsage)
	}
	if cfg.Dataset == "" {
		return fmt.Errorf("%w: missing --dataset", cli.ErrUsage)
	}

	ds, err := openDataset(cfg.Dataset)
	if err != nil {
		return err
	}

	id := idColor(cc.Out, cfg.Color)
	tc := typeColor(cc.Out, cfg.Color)
	var walkErr error
	dap.Walk(ds, func(vid dap.VarPath, v *dap.Var) {
		if len(vid) == 0 || walkErr != nil {
			return
		}
		line := id("%s", vid.String())
		if v.Dtype != nil {
			t, err := v.Dtype.DAPType()
			if err != nil {
				walkErr = err
				return
			}
			line += " " + tc("%s", t)
		}
		for _, n := range v.Shape {
			line += fmt.Sprintf("[%d]", n)
		}
		fmt.Fprintln(cc.Out, line)
	})
	return walkErr
}
