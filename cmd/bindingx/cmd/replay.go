package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-drift/bindingx/cmd/bindingx/internal/config"
	"github.com/go-drift/bindingx/cmd/bindingx/internal/replay"
	"github.com/go-drift/bindingx/cmd/bindingx/internal/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a binding scenario",
		Long: `Replay a keyframed scenario through the property dispatcher.

Every frame samples each track and applies it to its view, then the final
view state, commit counts, dispatch outcomes and diagnostics are printed.

Defaults come from bindingx.yaml in the current directory, then from
BINDINGX_* environment variables, then from flags.

Flags:
  --fps N          Frames per second
  --density D      Display density used to convert sizes to pixels
  --verbose        Print every property write per frame`,
		Usage: "bindingx replay [--fps N] [--density D] [--verbose] <scenario.yaml>",
		Run:   runReplay,
	})
}

// dumper prints full view state in verbose mode.
var dumper = spew.ConfigState{Indent: "    ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

type replayOptions struct {
	path    string
	fps     int
	density float64
	verbose bool
}

func parseReplayArgs(args []string, cfg *config.Resolved) (replayOptions, error) {
	opts := replayOptions{fps: cfg.FPS, density: cfg.Density, verbose: cfg.Verbose}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "--verbose":
			opts.verbose = true
		case "--fps", "--density":
			if !hasValue {
				if i+1 >= len(args) {
					return opts, fmt.Errorf("%s requires a value", name)
				}
				i++
				value = args[i]
			}
			if name == "--fps" {
				n, err := strconv.Atoi(value)
				if err != nil {
					return opts, fmt.Errorf("invalid --fps %q", value)
				}
				opts.fps = n
			} else {
				f, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return opts, fmt.Errorf("invalid --density %q", value)
				}
				opts.density = f
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("only one scenario file may be given")
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("replay requires a scenario file")
	}
	override := config.Resolved{FPS: opts.fps, Density: opts.density}
	if err := override.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func runReplay(args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	opts, err := parseReplayArgs(args, cfg)
	if err != nil {
		return err
	}

	s, err := scenario.Load(opts.path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ropts := replay.Options{FPS: opts.fps, Density: opts.density}
	if opts.verbose {
		ropts.Trace = stdout
	}
	res, err := replay.Run(ctx, s, ropts)
	if err != nil {
		return fmt.Errorf("replay %s: %w", opts.path, err)
	}
	printResult(res, opts)
	return nil
}

func printResult(res *replay.Result, opts replayOptions) {
	fmt.Fprintf(stdout, "Replayed %d frames at %d fps (density %g), %d commits\n",
		res.Frames, opts.fps, opts.density, res.Commits)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Views:")
	for _, v := range res.Views {
		s := v.State
		fmt.Fprintf(stdout, "  tag %d (%d commits)\n", v.Tag, v.Commits)
		fmt.Fprintf(stdout, "    alpha %g  translate (%g, %g)  scale (%g, %g)\n",
			s.Alpha, s.TranslationX, s.TranslationY, s.ScaleX, s.ScaleY)
		fmt.Fprintf(stdout, "    rotate %g  rotateX %g  rotateY %g  camera %g\n",
			s.Rotation, s.RotationX, s.RotationY, s.CameraDistance)
		if s.PivotSet {
			fmt.Fprintf(stdout, "    pivot (%g, %g)\n", s.Pivot.X, s.Pivot.Y)
		}
		fmt.Fprintf(stdout, "    background %s  text %s  scroll (%d, %d)  layout %dx%d\n",
			s.Background, s.TextColor, s.ScrollX, s.ScrollY, s.LayoutWidth, s.LayoutHeight)
		if opts.verbose {
			dumper.Fdump(stdout, s)
		}
	}

	if len(res.Counts) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Outcomes:")
		for _, c := range res.Counts {
			fmt.Fprintf(stdout, "  %-24s %-16s %d\n", c.Property, c.Outcome, c.Value)
		}
	}

	if len(res.Errors) > 0 || len(res.Panics) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Diagnostics:")
		seen := make(map[string]bool)
		for _, e := range res.Errors {
			msg := e.Error()
			if !seen[msg] {
				seen[msg] = true
				fmt.Fprintf(stdout, "  %s\n", msg)
			}
		}
		for _, p := range res.Panics {
			fmt.Fprintf(stdout, "  %s\n", p.Error())
		}
	}
}
