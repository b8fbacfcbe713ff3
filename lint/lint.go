package lint

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/plint-dev/plint/internal"
	tt "github.com/plint-dev/plint/internal/types"
	"github.com/plint-dev/plint/scanner"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LintEngine is what the processing pipeline needs from an engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreCheck(name string)
	IgnorePath(path string)
}

// New builds an engine from the configuration file at configurationPath.
// An empty path means built-in defaults.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.Checks, config.CustomPatterns, config.IgnoreComments)
}

// ProcessSources lints in-memory sources one after another.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessFiles lints every given path, descending into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessPath lints one file, or every target file under one directory.
// Directory runs fan out to a bounded worker pool and draw a progress bar.
// A cancelled or expired context stops the run before the next file is
// dispatched.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var issues []tt.Issue
	if info.IsDir() {
		scanned, err := scanner.New(path, internal.TargetExtensions()...).Scan()
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		files := make([]string, 0, len(scanned))
		for _, f := range scanned {
			files = append(files, f.Path)
		}

		resultChan := make(chan []tt.Issue, len(files))
		errorChan := make(chan error, len(files))

		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		var wg sync.WaitGroup
		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			wg.Add(1)
			go func(fp string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				fileIssues, err := processor(engine, fp)
				if err != nil {
					errorChan <- fmt.Errorf("processing %s: %w", fp, err)
					return
				}
				resultChan <- fileIssues
				_ = bar.Add(1)
			}(filePath)
		}

		wg.Wait()
		close(resultChan)
		close(errorChan)

		if err, ok := <-errorChan; ok {
			return nil, err
		}
		for fileIssues := range resultChan {
			issues = append(issues, fileIssues...)
		}
		fmt.Println()
	} else if internal.HasTargetExtension(path) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileIssues, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}

	return issues, nil
}

// ProcessFile runs the engine on a single file.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSource runs the engine on raw source bytes.
func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

// Config represents the overall configuration of the linter.
type Config struct {
	Name           string                    `yaml:"name"`
	IgnoreComments bool                      `yaml:"ignore-comments"`
	Checks         map[string]tt.ConfigCheck `yaml:"checks"`
	CustomPatterns []tt.CustomPattern        `yaml:"custom-patterns"`
}

// DefaultConfig is what an empty configuration path resolves to: all
// built-in checks at their default severity, comments ignored.
func DefaultConfig() Config {
	return Config{
		Name:           "plint",
		IgnoreComments: true,
		Checks:         map[string]tt.ConfigCheck{},
	}
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	if configurationPath == "" {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}
