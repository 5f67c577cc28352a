package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newManifestCmd(gf *gridFlags) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "List every asset path a complete asset set must contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := gf.grid(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range g.Manifest(base) {
				if _, err := fmt.Fprintln(out, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&base, "base", "b", "", "prefix prepended to each asset name")
	return cmd
}
