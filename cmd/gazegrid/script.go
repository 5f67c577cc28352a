package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gaze"
)

// maxScriptFrames bounds a headless script run.
const maxScriptFrames = 100000

func newScriptCmd(gf *gridFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script SCRIPT.json",
		Short: "Replay a JSON input script against the configured trackers",
		Long: `script builds the trackers listed in --config, feeds the script's ` +
			`moves through them one frame at a time, and reports every failed ` +
			`expectation. It exits non-zero if any expectation fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			failures, err := runScript(cfg, data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range failures {
				fmt.Fprintln(out, f)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d expectation(s) failed", len(failures))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	return cmd
}

// runScript executes a test script headlessly and returns its failures.
func runScript(cfg *gaze.Config, script []byte) ([]string, error) {
	rc, err := cfg.RegistryConfig()
	if err != nil {
		return nil, err
	}
	reg, err := gaze.NewRegistry(rc)
	if err != nil {
		return nil, err
	}
	for _, tc := range cfg.Trackers {
		if _, err := reg.CreateTracker(tc.Descriptor(), gaze.RectContainer(tc.Rect()), nil); err != nil {
			return nil, err
		}
	}
	runner, err := gaze.LoadTestScript(script)
	if err != nil {
		return nil, err
	}
	reg.SetTestRunner(runner)
	for i := 0; i < maxScriptFrames && !runner.Done(); i++ {
		reg.Update()
	}
	if !runner.Done() {
		return nil, fmt.Errorf("script did not finish within %d frames", maxScriptFrames)
	}
	return runner.Failures(), nil
}
