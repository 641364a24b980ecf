package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Track attendance and daily pay for construction workers",
	Long: `roster keeps a month of attendance for one worker at a time: pick a
worker, pick a month, set the daily wage and mark each day as paid or absent.
Nothing is saved between runs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(workersCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for tools that walk the command tree.
func Root() *cobra.Command {
	return rootCmd
}
