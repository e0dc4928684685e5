package wordcount

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrEmptyLine    = errors.New("empty line")
	ErrMissingCount = errors.New("missing count")
	ErrBadCount     = errors.New("bad count")
)

// строки длиннее стандартных 64KiB встречаются в выгрузках текстов
const maxLineSize = 1 << 20

// ParseDictionaryLine разбирает строку словаря вида "word count".
// Всё после счётчика игнорируется.
func ParseDictionaryLine(line string) (string, Count, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", 0, ErrEmptyLine
	case 1:
		return "", 0, ErrMissingCount
	}
	// один ведущий "+" допустим: "+5" == 5, но "+", "++5" и "+-1" — ошибки
	value, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "+"), 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadCount, fields[1])
	}
	return fields[0], Count(value), nil
}

func stopReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyLine):
		return "empty_line"
	case errors.Is(err, ErrMissingCount):
		return "missing_count"
	case errors.Is(err, ErrBadCount):
		return "bad_count"
	default:
		return "unknown"
	}
}

// Loader builds and updates dictionaries from line-oriented text.
type Loader struct {
	sanitizer Sanitizer
	logger    *zap.Logger
	metrics   *Metrics
}

// NewLoader returns a Loader. logger and metrics may be nil.
func NewLoader(sanitizer Sanitizer, logger *zap.Logger, metrics *Metrics) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{sanitizer: sanitizer, logger: logger, metrics: metrics}
}

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}

// LoadDictionary reads "word count" lines into a new Dictionary.
// Reading stops at the first blank or malformed line; the stop is logged
// at WARN and counted in metrics, and everything before it is kept.
// Duplicate words keep their first count.
func (l *Loader) LoadDictionary(ctx context.Context, r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		l.metrics.lineRead(sourceDictionary)

		word, count, err := ParseDictionaryLine(scanner.Text())
		if err != nil {
			reason := stopReason(err)
			l.logger.Warn("dictionary read stopped",
				zap.Int("line", lineNo),
				zap.String("reason", reason),
				zap.Error(err),
			)
			l.metrics.dictionaryStopped(reason)
			return d, nil
		}

		word = l.sanitizer.Sanitize(word)
		if word == "" {
			l.logger.Debug("dictionary word is empty after sanitizing", zap.Int("line", lineNo))
			continue
		}
		if !d.Seed(word, count) {
			l.logger.Debug("duplicate dictionary word ignored",
				zap.Int("line", lineNo),
				zap.String("word", word),
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary line %d: %w", lineNo+1, err)
	}
	return d, nil
}

// Update increments d once for the first word of every line in r.
func (l *Loader) Update(ctx context.Context, d *Dictionary, r io.Reader) error {
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		l.metrics.lineRead(sourceInput)

		token, ok := FirstToken(scanner.Text())
		if !ok {
			l.metrics.lineSkipped()
			continue
		}
		word := l.sanitizer.Sanitize(token)
		if word == "" {
			l.metrics.lineSkipped()
			continue
		}
		d.Increment(word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input line %d: %w", lineNo+1, err)
	}
	return nil
}
