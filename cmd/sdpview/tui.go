package main

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/app"
	"github.com/jwulff/sdpview/internal/db"
	"github.com/jwulff/sdpview/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func tuiCmd(o *options) *cobra.Command {
	var (
		in  inputFlags
		tab string
	)
	cmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "Browse a description interactively",
		Long: `Browse a description interactively.

Files and captures are re-read on reload (r). Piped input is read once.

Examples:
  sdpview tui offer.sdp
  sdpview tui --latest
  pbpaste | sdpview tui`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tab == "" {
				tab = o.cfg.TUI.DefaultTab
			}
			startTab, err := app.ParseTab(tab)
			if err != nil {
				return err
			}

			programOpts := []tea.ProgramOption{tea.WithAltScreen()}

			var src app.Source
			switch {
			case in.fromStore():
				if len(args) > 0 {
					return errFileWithStore
				}
				store, err := db.Open(o.cfg.DB.Path)
				if err != nil {
					return err
				}
				defer store.Close()
				src = app.StoreSource{Store: store, ID: in.id}
			case len(args) > 0 && args[0] != "-":
				src = app.FileSource{Path: args[0]}
			default:
				text, name, err := o.readInput(cmd, args, in)
				if err != nil {
					return err
				}
				src = app.StaticSource{Label: name, Text: text}
				// stdin is consumed; read keys from the terminal instead.
				programOpts = append(programOpts, tea.WithInputTTY())
			}

			m := app.New(app.Config{
				Source:    src,
				Inspector: o.inspector(),
				Tab:       startTab,
				Log:       logging.WithComponent("tui"),
			})
			p := tea.NewProgram(m, programOpts...)
			_, err = p.Run()
			return err
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&tab, "tab", "", "initial view: records, overview or json (default from config)")
	return cmd
}
