package wordcount

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected string
	}{
		{input: "Hello", expected: "hello"},
		{input: "Hello,", expected: "hello"},
		{input: "wait...", expected: "wait"},
		{input: "What?!", expected: "what"},
		{input: ",.!?", expected: ""},
		{input: "don't", expected: "don't"},
		{input: "semi;colon", expected: "semi;colon"},
		{input: "ÉCOLE!", expected: "école"},
		{input: "", expected: ""},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, Sanitize(tc.input))
		})
	}
}

func TestSanitizerCustom(t *testing.T) {
	s := Sanitizer{Punctuation: ";:", Lowercase: false}
	require.Equal(t, "Semi,colon!", s.Sanitize("Semi;,colon!:"))

	s = Sanitizer{Lowercase: true}
	require.Equal(t, "a.b", s.Sanitize("A.B"))
}

func TestFirstToken(t *testing.T) {
	for _, tc := range []struct {
		line  string
		token string
		ok    bool
	}{
		{line: "hello world", token: "hello", ok: true},
		{line: "   indented word", token: "indented", ok: true},
		{line: "tab\tseparated", token: "tab", ok: true},
		{line: "single", token: "single", ok: true},
		{line: "", ok: false},
		{line: " \t ", ok: false},
	} {
		t.Run(tc.line, func(t *testing.T) {
			token, ok := FirstToken(tc.line)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.token, token)
		})
	}
}
