package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Extractive text summarization from the command line",
	Long: `Summarize selects the most representative sentences of a document
and returns them in their original order.

Four scoring methods are available: frequency, tfidf, position and
hybrid (a weighted blend of the other three). No text is generated;
the summary is always a subset of the input's own sentences.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("summarize v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml, then ~/.config/summarize/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}
