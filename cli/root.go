package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/codedrift/anim"
	"github.com/pthm-cable/codedrift/config"
)

// rootOpts holds the flags shared by every command.
type rootOpts struct {
	configPath string // YAML config file; empty uses embedded defaults
	theme      string // startup theme override
	seed       int64  // RNG seed; 0 is time-based
	verbose    bool
}

// engineOptions builds host options from the shared flags. config.Init must
// have run.
func (r *rootOpts) engineOptions() anim.Options {
	seed := r.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return anim.Options{
		Config: config.Cfg(),
		Seed:   seed,
		Theme:  r.theme,
	}
}

// Execute runs the codedrift CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "codedrift",
		Short:        "codedrift draws a drifting code-themed particle background",
		Long:         `codedrift animates binary rain, floating symbols and drifting code snippets that shy away from the pointer, in a window, a terminal or headless for profiling.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.theme != "" && opts.theme != "dark" && opts.theme != "light" {
				return errUnknownTheme(opts.theme)
			}
			return config.Init(opts.configPath)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config.yaml (empty = use defaults)")
	pf.StringVar(&opts.theme, "theme", "", "startup theme: dark or light (empty = use config)")
	pf.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = time-based)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newTermCmd(opts))
	root.AddCommand(newHeadlessCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}
