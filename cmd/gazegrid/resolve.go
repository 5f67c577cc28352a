package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gaze"
)

func newResolveCmd(gf *gridFlags) *cobra.Command {
	var (
		rect  string
		base  string
		debug bool
	)
	cmd := &cobra.Command{
		Use:   "resolve X,Y [X,Y...]",
		Short: "Print the asset path a pointer position maps to",
		Long: `resolve maps client coordinates to asset paths for a container ` +
			`rectangle given as LEFT,TOP,WIDTH,HEIGHT. Positions outside the ` +
			`rectangle clamp to its edge.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := gf.grid(cmd)
			if err != nil {
				return err
			}
			vals, err := parseFloats(rect, 4)
			if err != nil {
				return fmt.Errorf("--rect: %w", err)
			}
			r := gaze.Rect{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}

			tr := gaze.NewTracker(nil, g, gaze.Descriptor{BasePath: base, Debug: debug}, gaze.RectContainer(r), nil)

			out := cmd.OutOrStdout()
			for _, arg := range args {
				pt, err := parseFloats(arg, 2)
				if err != nil {
					return fmt.Errorf("position %q: %w", arg, err)
				}
				tr.SetFromClient(pt[0], pt[1])
				last := tr.LastFrame()
				line := last.Path
				if debug {
					line += "\t" + strings.ReplaceAll(last.Debug, "\n", " ")
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rect, "rect", "r", "0,0,256,256", "container rectangle LEFT,TOP,WIDTH,HEIGHT")
	f.StringVarP(&base, "base", "b", gaze.DefaultBasePath, "asset path prefix")
	f.BoolVar(&debug, "debug", false, "also print the debug overlay text")
	return cmd
}

// parseFloats splits a comma-separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out[i] = v
	}
	return out, nil
}
