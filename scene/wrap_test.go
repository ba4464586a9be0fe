package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"no wrap", "hello world", 0, []string{"hello world"}},
		{"fits", "hello world", 11, []string{"hello world"}},
		{"breaks on space", "hello world", 8, []string{"hello", "world"}},
		{"greedy", "a bb ccc dd e", 6, []string{"a bb", "ccc dd", "e"}},
		{"long word split", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"newlines kept", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 5, TextWidth([]string{"abc", "abcde", ""}))
	assert.Equal(t, 0, TextWidth(nil))
}
