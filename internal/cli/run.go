package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"text-summarizer/internal/config"
	"text-summarizer/internal/domain"
	"text-summarizer/internal/summarizer"
)

var (
	runMethod    string
	runSentences int
	runStats     bool
)

// runCmd summarizes files or stdin and prints the result.
var runCmd = &cobra.Command{
	Use:   "run [file ...]",
	Short: "Summarize text from files or stdin",
	Long: `Read text from the given files (or stdin when no files are given),
summarize it with the selected method and print the summary.

Methods: frequency, tfidf, position, hybrid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		methodName := cfg.Summarizer.Method
		if runMethod != "" {
			methodName = runMethod
		}
		method, err := domain.ParseMethod(methodName)
		if err != nil {
			return err
		}

		sentences := cfg.Summarizer.NumSentences
		if cmd.Flags().Changed("sentences") {
			sentences = runSentences
		}
		if sentences < 1 {
			return fmt.Errorf("sentences must be positive, got %d", sentences)
		}

		text, err := readInput(args)
		if err != nil {
			return err
		}

		engine := summarizer.New()
		summary, err := engine.Summarize(text, sentences, method)
		if err != nil {
			return err
		}
		fmt.Println(summary)

		if runStats {
			printStats(cmd.ErrOrStderr(), engine.Stats(text, summary))
		}
		return nil
	},
}

func loadConfig() (*config.AppConfig, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

func readInput(paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	var sb strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", err
		}
		sb.Write(data)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func printStats(w io.Writer, st domain.Stats) {
	fmt.Fprintf(w, "Original: %d words, %d sentences\n", st.OriginalWords, st.OriginalSentences)
	fmt.Fprintf(w, "Summary:  %d words, %d sentences\n", st.SummaryWords, st.SummarySentences)
	fmt.Fprintf(w, "Compression: %s\n", st.CompressionRatio)
}

func init() {
	runCmd.Flags().StringVarP(&runMethod, "method", "m", "", "scoring method: frequency, tfidf, position or hybrid")
	runCmd.Flags().IntVarP(&runSentences, "sentences", "n", 3, "number of sentences in the summary")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "print compression statistics to stderr")
	rootCmd.AddCommand(runCmd)
}
