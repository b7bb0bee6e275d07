package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	dap "github.com/qri-io/dap-go"
)

type projectConfig struct {
	*cli.Command
	Dataset string `cli:"name=dataset aliases=d desc='path to a dataset document (.json, optionally gzipped)'"`
	Color   bool   `cli:"name=color desc='force colored output'"`
}

// ProjectCommand returns the project subcommand.
func ProjectCommand() *cli.Command {
	cfg := &projectConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "project").
		WithSynopsis("project --dataset <file> <projection> - Resolve a projection against a dataset document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *projectConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one projection argument", cli.ErrUsage)
	}
	if cfg.Dataset == "" {
		return fmt.Errorf("%w: missing --dataset", cli.ErrUsage)
	}

	ds, err := openDataset(cfg.Dataset)
	if err != nil {
		return err
	}
	proj, err := dap.ParseProjection(args[0])
	if err != nil {
		return err
	}
	proj, err = dap.FixShorthand(proj, ds)
	if err != nil {
		return err
	}

	id := idColor(cc.Out, cfg.Color)
	for _, pv := range proj {
		if _, err := dap.GetVar(ds, pv.ID()); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, id("%s", pv.String()))
	}
	return nil
}
