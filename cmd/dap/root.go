package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	dap "github.com/qri-io/dap-go"
)

const usageText = `dap - inspect and transform DAP hyperslabs and constraint expressions

Usage:
  dap normalize --shape <dims> <hyperslab>   Resolve a hyperslab against an array shape
  dap combine <hyperslab> <hyperslab>        Combine two sequentially applied hyperslabs
  dap project --dataset <file> <projection>  Resolve a projection against a dataset document
  dap vars --dataset <file>                  List the variables of a dataset document

Examples:
  dap normalize --shape 5,7 "[-1][0:2:4]"
  dap combine "[2:1:9]" "[0:1:2]"
  dap project --dataset testdata/coads.json "SST[0:1:11],lat"
  dap vars --dataset testdata/coads.json`

// Root returns the root command for dap.
func Root() *cli.Command {
	return cli.NewCommand("dap").
		WithSynopsis("dap - DAP hyperslab and constraint expression tool").
		WithDescription(usageText).
		WithSubs(
			NormalizeCommand(),
			CombineCommand(),
			ProjectCommand(),
			VarsCommand(),
		)
}

// parseShape parses a comma-separated list of axis lengths (for example
// "5,7") into a Shape.
func parseShape(raw string) (dap.Shape, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: missing --shape", cli.ErrUsage)
	}
	parts := strings.Split(raw, ",")
	shape := make(dap.Shape, 0, len(parts))
	for _, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: bad dimension %q", cli.ErrUsage, part)
		}
		if dim < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", cli.ErrUsage, dim)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}
