package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if structuredOutputRequested() {
			return printOutput(map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
		}
		_, err := io.WriteString(stdoutFromContext(cmd.Context()), versionLine())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
