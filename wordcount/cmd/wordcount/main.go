package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gitlab.com/rogovks/wordcount/wordcount"
)

type flags struct {
	config      string
	format      string
	output      string
	punctuation string
	keepCase    bool
	metricsFile string
	verbose     bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "путь к .yaml конфигу")
	fs.StringVarP(&f.format, "format", "f", string(wordcount.FormatText), "формат отчёта: text, yaml или xlsx")
	fs.StringVarP(&f.output, "output", "o", "", "файл для отчёта (по умолчанию stdout)")
	fs.StringVar(&f.punctuation, "punctuation", wordcount.DefaultPunctuation, "символы, удаляемые из слов")
	fs.BoolVar(&f.keepCase, "keep-case", false, "не приводить слова к нижнему регистру")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "куда записать метрики в формате prometheus textfile")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "подробные логи")
}

// settings — результат слияния конфига и флагов
type settings struct {
	sanitizer   wordcount.Sanitizer
	format      wordcount.Format
	output      string
	metricsFile string
}

// resolveSettings накладывает явно заданные флаги поверх файла конфигурации.
func resolveSettings(cfg *wordcount.Config, f *flags, fs *pflag.FlagSet) (settings, error) {
	if cfg == nil {
		cfg = &wordcount.Config{}
	}
	s := settings{
		sanitizer:   cfg.Sanitizer(),
		output:      cfg.Output,
		metricsFile: cfg.MetricsFile,
	}
	format := cfg.Format

	if fs.Changed("punctuation") {
		s.sanitizer.Punctuation = f.punctuation
	}
	if fs.Changed("keep-case") {
		s.sanitizer.Lowercase = !f.keepCase
	}
	if fs.Changed("format") || format == "" {
		format = f.format
	}
	if fs.Changed("output") {
		s.output = f.output
	}
	if fs.Changed("metrics-file") {
		s.metricsFile = f.metricsFile
	}

	var err error
	s.format, err = wordcount.ParseFormat(format)
	if err != nil {
		return settings{}, err
	}
	return s, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "wordcount [flags] DICTIONARY INPUT",
		Short:         "Count first words of input lines on top of a seed dictionary",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(f.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			var cfg *wordcount.Config
			if f.config != "" {
				cfg, err = wordcount.LoadConfig(f.config)
				if err != nil {
					return err
				}
			}

			s, err := resolveSettings(cfg, &f, cmd.Flags())
			if err != nil {
				return err
			}

			// отчёт в файл пишем только после успешного подсчёта,
			// иначе упавший запуск затрёт предыдущий отчёт
			var (
				out    io.Writer = cmd.OutOrStdout()
				report bytes.Buffer
			)
			if s.output != "" {
				out = &report
			}

			err = wordcount.Run(cmd.Context(), wordcount.Options{
				DictionaryPath: args[0],
				InputPath:      args[1],
				Sanitizer:      s.sanitizer,
				Format:         s.format,
				Output:         out,
				MetricsFile:    s.metricsFile,
				Logger:         logger,
			})
			if err != nil {
				return err
			}
			if s.output != "" {
				if err := os.WriteFile(s.output, report.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				logger.Info("report written", zap.String("path", s.output))
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
