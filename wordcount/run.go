package wordcount

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Options описывает один запуск подсчёта
type Options struct {
	DictionaryPath string
	InputPath      string
	Sanitizer      Sanitizer
	Format         Format
	// Output получает отчёт; nil означает os.Stdout
	Output io.Writer
	// MetricsFile — путь для textfile метрик, пусто — не писать
	MetricsFile string
	Logger      *zap.Logger
}

// Run loads the dictionary, counts the input and writes the report.
// It stops at the first failure and returns it wrapped with the stage and path.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	metrics := NewMetrics()
	loader := NewLoader(opts.Sanitizer, logger, metrics)

	dict, err := loadDictionaryFile(ctx, loader, opts.DictionaryPath)
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded",
		zap.String("path", opts.DictionaryPath),
		zap.Int("entries", dict.Len()),
	)

	if err := updateFromFile(ctx, loader, dict, opts.InputPath); err != nil {
		return err
	}

	entries := dict.NonZero()
	metrics.setEntries(len(entries))
	logger.Info("input counted",
		zap.String("path", opts.InputPath),
		zap.Int("entries", len(entries)),
	)

	if err := WriteReport(out, opts.Format, entries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return fmt.Errorf("write metrics %q: %w", opts.MetricsFile, err)
		}
	}
	return nil
}

func loadDictionaryFile(ctx context.Context, loader *Loader, path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	dict, err := loader.LoadDictionary(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", path, err)
	}
	return dict, nil
}

func updateFromFile(ctx context.Context, loader *Loader, dict *Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if err := loader.Update(ctx, dict, f); err != nil {
		return fmt.Errorf("count input %q: %w", path, err)
	}
	return nil
}
