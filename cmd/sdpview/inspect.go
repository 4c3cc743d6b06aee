package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/format"
	"github.com/jwulff/sdpview/internal/inspect"
)

// explainWidth wraps explanations written to a terminal.
const explainWidth = 80

// outputFlags choose the encoding of one-shot commands.
type outputFlags struct {
	format string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or yaml (default from config)")
}

// resolve picks the flag value, falling back to the configured format, and
// styles text output only when it goes to a terminal.
func (f outputFlags) resolve(o *options, out io.Writer, width int) (format.Format, format.Options, error) {
	name := f.format
	if name == "" {
		name = o.cfg.Output.Format
	}
	fm, err := format.Parse(name)
	if err != nil {
		return "", format.Options{}, err
	}
	var opts format.Options
	if fm == format.Text && isTerminal(out) {
		opts = format.Options{Styled: true, Width: width}
	}
	return fm, opts, nil
}

// load reads the input and runs the pipeline on it.
func (o *options) load(cmd *cobra.Command, args []string, in inputFlags) (*inspect.Inspection, error) {
	text, name, err := o.readInput(cmd, args, in)
	if err != nil {
		return nil, err
	}
	insp, err := o.inspector().Inspect(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return insp, nil
}

func groupsCmd(o *options) *cobra.Command {
	var (
		in  inputFlags
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "groups [file]",
		Short: "Print the description grouped into session and media sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insp, err := o.load(cmd, args, in)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fm, opts, err := out.resolve(o, w, 0)
			if err != nil {
				return err
			}
			return format.WriteGroups(w, insp.Groups, fm, opts)
		},
	}
	in.register(cmd)
	out.register(cmd)
	return cmd
}

func explainCmd(o *options) *cobra.Command {
	var (
		in   inputFlags
		out  outputFlags
		line int
	)
	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain the record on one line of the description",
		Long: `Explain the record on one line of the description.

Examples:
  sdpview explain offer.sdp --line 12
  pbpaste | sdpview explain --line 3 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := o.readInput(cmd, args, in)
			if err != nil {
				return err
			}
			doc, err := o.inspector().Explain(text, line)
			if errors.Is(err, inspect.ErrNoRecord) {
				return fmt.Errorf("%s: no record at line %d", name, line)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			w := cmd.OutOrStdout()
			fm, opts, err := out.resolve(o, w, explainWidth)
			if err != nil {
				return err
			}
			return format.WriteDocument(w, doc, fm, opts)
		},
	}
	in.register(cmd)
	out.register(cmd)
	cmd.Flags().IntVarP(&line, "line", "l", 0, "line number to explain (1-based)")
	_ = cmd.MarkFlagRequired("line")
	return cmd
}

func overviewCmd(o *options) *cobra.Command {
	var (
		in  inputFlags
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "overview [file]",
		Short: "Summarize transport parameters and the payloads of each media section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insp, err := o.load(cmd, args, in)
			if err != nil {
				return err
			}
			ov, err := insp.Overview()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fm, opts, err := out.resolve(o, w, 0)
			if err != nil {
				return err
			}
			return format.WriteOverview(w, ov, fm, opts)
		},
	}
	in.register(cmd)
	out.register(cmd)
	return cmd
}
