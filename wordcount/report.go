package wordcount

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

// Format — формат отчёта
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

const xlsxSheet = "counts"

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatXLSX:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// WriteReport пишет записи в w в заданном формате.
func WriteReport(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatText, "":
		return WriteText(w, entries)
	case FormatYAML:
		return WriteYAML(w, entries)
	case FormatXLSX:
		return WriteXLSX(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText prints one "word: count" line per entry.
func WriteText(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteYAML пишет отображение слово -> счётчик, сохраняя порядок записей
func WriteYAML(w io.Writer, entries []Entry) error {
	doc := make(yaml.MapSlice, 0, len(entries))
	for _, e := range entries {
		doc = append(doc, yaml.MapItem{Key: e.Word, Value: uint64(e.Count)})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteXLSX пишет книгу с одним листом "counts": заголовок word,count и по строке на запись.
func WriteXLSX(w io.Writer, entries []Entry) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	// новая книга создаётся с листом Sheet1
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &[]interface{}{"word", "count"}); err != nil {
		return err
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &[]interface{}{e.Word, int64(e.Count)}); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
