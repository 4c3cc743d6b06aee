package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/app"
	"github.com/jwulff/sdpview/internal/db"
)

var (
	errNoInput       = errors.New("no input: pass a file, pipe a description on stdin, or use --id/--latest")
	errFileWithStore = errors.New("a file argument cannot be combined with --id or --latest")
)

// inputFlags select a capture from the database instead of a file.
type inputFlags struct {
	id     string
	latest bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "read the capture with this id from the capture database")
	cmd.Flags().BoolVar(&f.latest, "latest", false, "read the newest capture from the capture database")
}

func (f inputFlags) fromStore() bool { return f.id != "" || f.latest }

// readInput returns the description text and a name for it. The source is,
// in order: the capture database when --id or --latest is set, the file
// argument, or stdin when it is "-" or not a terminal.
func (o *options) readInput(cmd *cobra.Command, args []string, in inputFlags) (text, name string, err error) {
	if in.fromStore() {
		if len(args) > 0 {
			return "", "", errFileWithStore
		}
		store, err := db.Open(o.cfg.DB.Path)
		if err != nil {
			return "", "", err
		}
		defer store.Close()
		src := app.StoreSource{Store: store, ID: in.id}
		text, err := src.Read(cmd.Context())
		return text, src.Name(), err
	}

	if len(args) > 0 && args[0] != "-" {
		src := app.FileSource{Path: args[0]}
		text, err := src.Read(cmd.Context())
		return text, src.Name(), err
	}

	stdin := cmd.InOrStdin()
	if len(args) == 0 && isTerminal(stdin) {
		return "", "", errNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
