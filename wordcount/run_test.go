package wordcount

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const expectedReport = "apple: 3\nbanana: 2\ncherry: 5\ndate: 1\nfig: 1\n"

func testOptions(t *testing.T, out *bytes.Buffer) Options {
	return Options{
		DictionaryPath: filepath.Join("testdata", "dictionary.txt"),
		InputPath:      filepath.Join("testdata", "input.txt"),
		Sanitizer:      DefaultSanitizer,
		Format:         FormatText,
		Output:         out,
		Logger:         zaptest.NewLogger(t),
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), testOptions(t, &out)))
	require.Equal(t, expectedReport, out.String())
}

func TestRunWritesMetrics(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(t, &out)
	opts.MetricsFile = filepath.Join(t.TempDir(), "wordcount.prom")

	require.NoError(t, Run(context.Background(), opts))

	data, err := os.ReadFile(opts.MetricsFile)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `wordcount_lines_total{source="dictionary"} 6`)
	require.Contains(t, text, `wordcount_lines_total{source="input"} 7`)
	require.Contains(t, text, `wordcount_dictionary_stopped_total{reason="empty_line"} 1`)
	require.Contains(t, text, `wordcount_skipped_lines_total 2`)
	require.Contains(t, text, `wordcount_entries 5`)
}

func TestRunMissingFiles(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Options)
		errMsg string
	}{
		{
			name:   "dictionary",
			mutate: func(o *Options) { o.DictionaryPath = filepath.Join("testdata", "nope.txt") },
			errMsg: "open dictionary",
		},
		{
			name:   "input",
			mutate: func(o *Options) { o.InputPath = filepath.Join("testdata", "nope.txt") },
			errMsg: "open input",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			opts := testOptions(t, &out)
			tc.mutate(&opts)

			err := Run(context.Background(), opts)
			require.ErrorIs(t, err, os.ErrNotExist)
			require.ErrorContains(t, err, tc.errMsg)
			require.Empty(t, out.String())
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, testOptions(t, &out))
	require.ErrorIs(t, err, context.Canceled)
}
