package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	dap "github.com/qri-io/dap-go"
)

// openDataset loads a dataset document from disk through a LocalStore rooted
// at the file's directory.
func openDataset(path string) (*dap.Var, error) {
	st, err := dap.NewLocalStore(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return dap.OpenDataset(st, filepath.Base(path))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// idColor returns the formatter for variable ids: cyan when forced or when
// writing to a terminal, plain otherwise.
func idColor(w io.Writer, force bool) func(format string, a ...interface{}) string {
	if force || isTerminal(w) {
		return color.CyanString
	}
	return fmt.Sprintf
}

// typeColor is the formatter for DAP type names.
func typeColor(w io.Writer, force bool) func(format string, a ...interface{}) string {
	if force || isTerminal(w) {
		return color.YellowString
	}
	return fmt.Sprintf
}
