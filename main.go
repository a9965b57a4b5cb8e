package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"omnibar/engine"
	"omnibar/logger"
	"omnibar/metrics"
	"omnibar/provider/fuzzy"
	"omnibar/provider/prefix"
)

type Config struct {
	Provider        string `json:"provider"`         // "prefix" or "fuzzy"
	SuggestDebounce int    `json:"suggest_debounce"` // in milliseconds
	SuggestTimeout  int    `json:"suggest_timeout"`  // in milliseconds
	SuggestLimit    int    `json:"suggest_limit"`
	WordListPath    string `json:"word_list_path"` // one candidate per line
	LogLevel        string `json:"log_level"`      // debug, info, warn, error
}

// Setup logger to log to a file in the same directory as the executable
// Caller must defer logger.Close()
func setupLogger(logLevel string) *logger.LimitedLogger {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("error getting executable path: %v", err)
	}
	execDir := filepath.Dir(execPath)
	logPath := filepath.Join(execDir, "omnibar.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	level := logger.ParseLogLevel(logLevel)
	limitedLogger := logger.NewLimitedLogger(f, level)
	log.SetOutput(limitedLogger)
	return limitedLogger
}

func loadConfig() Config {
	var config Config
	raw := os.Getenv("OMNIBAR_CONFIG")
	if raw == "" {
		return config
	}
	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	return config
}

// defaultWords seeds the demo when no word list is configured.
var defaultWords = []string{
	"git status",
	"git stash",
	"git log --oneline",
	"git checkout main",
	"go test ./...",
	"go build ./...",
	"make build",
	"make test",
	"docker compose up",
	"docker compose down",
	"kubectl get pods",
	"kubectl logs",
}

func loadWordList(path string) ([]string, error) {
	if path == "" {
		return defaultWords, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

func main() {
	config := loadConfig()

	// Default to info level if not specified
	logLevel := config.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	limitedLogger := setupLogger(logLevel)
	defer limitedLogger.Close()
	log.Printf("config: %+v", config)

	words, err := loadWordList(config.WordListPath)
	if err != nil {
		log.Fatalf("error loading word list: %v", err)
	}

	var prov engine.Provider
	switch config.Provider {
	case "fuzzy":
		prov = fuzzy.New(words)
	default:
		prov = prefix.New(words)
	}

	tracker := metrics.NewTracker()
	eng := engine.NewEngine(prov, tracker, engine.EngineConfig{
		SuggestDebounce: time.Duration(config.SuggestDebounce) * time.Millisecond,
		SuggestTimeout:  time.Duration(config.SuggestTimeout) * time.Millisecond,
		SuggestLimit:    config.SuggestLimit,
	})
	eng.Start(context.Background())
	defer eng.Stop()

	p := tea.NewProgram(newDemoModel(eng, tracker), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatalf("error running ui: %v", err)
	}

	if m, ok := final.(demoModel); ok && m.committed != "" {
		fmt.Println(m.committed)
	}
}
