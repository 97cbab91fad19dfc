package cli

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/codedrift/anim"
	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/game"
)

// runOpts holds the flags of the run command.
type runOpts struct {
	hud       bool   // show the HUD at startup
	outputDir string // CSV telemetry directory
	logStats  bool   // log stats windows
	maxFrames int    // stop after N frames (0 = until closed)
}

func newRunCmd(root *rootOpts) *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			installLogger(cmd.ErrOrStderr(), root.verbose, false)

			gopts := root.engineOptions()
			gopts.ShowHUD = opts.hud
			gopts.OutputDir = opts.outputDir
			gopts.LogStats = opts.logStats
			return runWindow(cmd, gopts, opts.maxFrames)
		},
	}

	cmd.Flags().BoolVar(&opts.hud, "hud", false, "show the HUD (toggle with H)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "output directory for CSV telemetry")
	cmd.Flags().BoolVar(&opts.logStats, "log-stats", false, "log stats windows")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 0, "stop after N frames (0 = until the window closes)")
	return cmd
}

// runWindow drives the raylib host on the calling goroutine until the window
// closes, the context ends or maxFrames frames have run.
func runWindow(cmd *cobra.Command, opts anim.Options, maxFrames int) error {
	cfg := config.Cfg()

	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return fmt.Errorf("starting window host: %w", err)
	}
	defer g.Unload()

	ctx := cmd.Context()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		g.Update()
		g.Draw()

		if maxFrames > 0 && g.Tick() >= int64(maxFrames) {
			break
		}
	}
	return nil
}
