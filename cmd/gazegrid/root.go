package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gaze"
)

// gridFlags are the grid overrides shared by every subcommand.
type gridFlags struct {
	config string
	min    int
	max    int
	step   int
	size   int
}

func newRootCmd() *cobra.Command {
	gf := &gridFlags{}
	root := &cobra.Command{
		Use:   "gazegrid",
		Short: "Inspect gaze asset grids and tracker layouts.",
		Long: `gazegrid works with the lattice a gaze asset set is rendered on. ` +
			`The grid defaults to -15..15 in steps of 3 at 256px and can be overridden ` +
			`by a YAML config (--config) or individual flags.`,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&gf.config, "config", "c", "", "YAML config with grid settings and trackers")
	pf.IntVar(&gf.min, "min", gaze.DefaultGrid.Min, "lowest lattice coordinate")
	pf.IntVar(&gf.max, "max", gaze.DefaultGrid.Max, "highest lattice coordinate")
	pf.IntVar(&gf.step, "step", gaze.DefaultGrid.Step, "lattice spacing")
	pf.IntVar(&gf.size, "size", gaze.DefaultGrid.Size, "resolution tag in asset names")

	root.AddCommand(
		newManifestCmd(gf),
		newResolveCmd(gf),
		newParseCmd(),
		newScriptCmd(gf),
	)
	return root
}

// loadConfig reads the --config file, or returns an empty config.
func (gf *gridFlags) loadConfig() (*gaze.Config, error) {
	if gf.config == "" {
		return &gaze.Config{}, nil
	}
	data, err := os.ReadFile(gf.config)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return gaze.LoadConfig(data)
}

// grid resolves the effective grid: explicitly set flags win over the config
// file, which wins over the defaults.
func (gf *gridFlags) grid(cmd *cobra.Command) (gaze.Grid, error) {
	cfg, err := gf.loadConfig()
	if err != nil {
		return gaze.Grid{}, err
	}
	g, err := cfg.GridValue()
	if err != nil {
		return gaze.Grid{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("min") {
		g.Min = gf.min
	}
	if flags.Changed("max") {
		g.Max = gf.max
	}
	if flags.Changed("step") {
		g.Step = gf.step
	}
	if flags.Changed("size") {
		g.Size = gf.size
	}
	return gaze.NewGrid(g.Min, g.Max, g.Step, g.Size)
}
