package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timetable/app"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print the efficient timetable without writing a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *app.Service) error {
			_, err := svc.Check(ctx, inputPath, cmd.OutOrStdout())
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
