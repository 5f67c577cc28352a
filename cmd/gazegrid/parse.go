package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gaze"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse NAME [NAME...]",
		Short: "Decode asset file names into grid cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out := cmd.OutOrStdout()
			for _, arg := range args {
				cell, size, err := gaze.ParseAssetName(path.Base(arg))
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s\tpx=%d py=%d size=%d\n", arg, cell.X, cell.Y, size); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
