package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timetable/app"
)

var outputDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the efficient timetable to a new file",
	Long: `Reads the original timetable, removes every service dominated by the
other provider and writes timetable_<h>_<m>_<s>.txt into the output
directory. A blank or invalid output directory falls back to the input
file's directory.`,
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, svc *app.Service) error {
		out, err := svc.Generate(ctx, inputPath, outputDir)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Output timetable generated at location: %s\n", out.Output)
		return err
	})
}
