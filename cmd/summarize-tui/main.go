package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"text-summarizer/internal/config"
	"text-summarizer/internal/domain"
	"text-summarizer/internal/summarizer"
	"text-summarizer/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/summarize/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: summarize-tui [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	method, err := domain.ParseMethod(cfg.Summarizer.Method)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var sb strings.Builder
	for _, p := range inputs {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Fatalf("failed to read %s: %v", p, err)
		}
		sb.Write(data)
		sb.WriteString("\n")
	}

	engine := summarizer.New()
	m := tui.New(engine, sb.String(), cfg.Summarizer.NumSentences, method)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
