package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/codedrift/terminal"
)

func newTermCmd(root *rootOpts) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Animate the background in the terminal",
		Long:  `Animate the background in the terminal. Keys: q, Esc or Ctrl-C quit, t toggles the theme, space pauses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen owns the terminal, so logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.Create(logFile)
				if err != nil {
					return fmt.Errorf("creating log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			installLogger(w, root.verbose, false)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}

			h, err := terminal.New(screen, root.engineOptions())
			if err != nil {
				screen.Fini()
				return err
			}
			return h.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}
