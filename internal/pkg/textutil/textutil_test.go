//go:build unit
// +build unit

package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCyrillic(t *testing.T) {
	assert.True(t, HasCyrillic("Описание товара"))
	assert.True(t, HasCyrillic("mixed Ёлка text"))
	assert.False(t, HasCyrillic("plain latin text"))
	assert.False(t, HasCyrillic(""))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "html fence",
			input:    "```html\n<p>Текст</p>\n```",
			expected: "<p>Текст</p>",
		},
		{
			name:     "no fence",
			input:    "<p>Текст</p>",
			expected: "<p>Текст</p>",
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n<p>Текст</p>\n ",
			expected: "<p>Текст</p>",
		},
		{
			name:     "trailing fence only",
			input:    "<p>Текст</p>\n```",
			expected: "<p>Текст</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFence(tt.input))
		})
	}
}

func TestNormalizeSheetID(t *testing.T) {
	id, err := NormalizeSheetID("1AbcDEfGh")
	require.NoError(t, err)
	assert.Equal(t, "1AbcDEfGh", id)

	id, err = NormalizeSheetID("https://docs.google.com/spreadsheets/d/1AbcDEfGh/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, "1AbcDEfGh", id)

	id, err = NormalizeSheetID("https://docs.google.com/spreadsheets/d/1AbcDEfGh")
	require.NoError(t, err)
	assert.Equal(t, "1AbcDEfGh", id)

	_, err = NormalizeSheetID("")
	assert.Error(t, err)

	_, err = NormalizeSheetID("https://docs.google.com/spreadsheets/d//edit")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("", 5))
}
