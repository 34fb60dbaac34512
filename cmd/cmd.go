package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wenzapen/scrapekit/cmd/scrape"
	"github.com/wenzapen/scrapekit/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version",
	Long:  "print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer()
	},
}

func Execute() {
	var rootCmd = &cobra.Command{Use: "scrapekit"}
	rootCmd.AddCommand(scrape.ScrapeCmd, versionCmd)
	rootCmd.Execute()
}
