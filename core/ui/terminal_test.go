package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTableAlignsMultiByteCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.table([]string{"City", "Key"}, [][]string{
		{"Zürich", "CH"},
		{"São Paulo", "BR"},
		{"London", "UK"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want header + rule + 3 rows", len(lines))
	}

	// Every row's second column must start at the same rune offset;
	// byte-length padding would pull rows with multi-byte city names
	// two columns left.
	offset := -1
	for _, line := range lines {
		cut := strings.LastIndex(line, "  ")
		if cut < 0 {
			t.Fatalf("no column separator in %q", line)
		}
		at := utf8.RuneCountInString(line[:cut])
		if offset == -1 {
			offset = at
		} else if at != offset {
			t.Errorf("second column at rune %d in %q, want %d", at, line, offset)
		}
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "abcde"},
		{"Zürich", 8, "Zürich  "},
	}
	for _, tt := range tests {
		if got := pad(tt.in, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
