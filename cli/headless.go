package cli

import (
	"github.com/spf13/cobra"

	"github.com/pthm-cable/codedrift/anim"
)

// headlessOpts holds the flags of the headless command.
type headlessOpts struct {
	frames       int
	outputDir    string
	pointerOrbit bool
	width        float64
	height       float64
	statsWindow  float64
	logStats     bool
}

func newHeadlessCmd(root *rootOpts) *cobra.Command {
	opts := headlessOpts{}

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the engine without a display and record telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			installLogger(cmd.ErrOrStderr(), root.verbose, true)

			gopts := root.engineOptions()
			gopts.Headless = true
			gopts.Frames = opts.frames
			gopts.OutputDir = opts.outputDir
			gopts.PointerOrbit = opts.pointerOrbit
			gopts.Width = opts.width
			gopts.Height = opts.height
			gopts.StatsWindowSec = opts.statsWindow
			gopts.LogStats = opts.logStats
			return anim.RunHeadless(cmd.Context(), gopts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.frames, "frames", 0, "frames to run (0 = one stats window)")
	f.StringVar(&opts.outputDir, "output-dir", "", "output directory for CSV telemetry and config snapshot")
	f.BoolVar(&opts.pointerOrbit, "pointer-orbit", false, "circle a synthetic pointer around the surface center")
	f.Float64Var(&opts.width, "width", 0, "surface width (0 = config screen width)")
	f.Float64Var(&opts.height, "height", 0, "surface height (0 = config screen height)")
	f.Float64Var(&opts.statsWindow, "stats-window", 0, "stats window size in seconds (0 = use config)")
	f.BoolVar(&opts.logStats, "log-stats", false, "log stats windows")
	return cmd
}
