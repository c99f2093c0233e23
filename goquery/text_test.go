package goquery_test

import (
	"testing"

	"github.com/fwojciec/legaldoc/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims surrounding whitespace", "\n\n  hello  \n\n", "hello"},
		{"collapses spaces within a line", "a \t  b", "a b"},
		{"keeps single line breaks", "a\nb", "a\nb"},
		{"keeps one blank line", "a\n\nb", "a\n\nb"},
		{"collapses blank line runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"whitespace-only lines are blank", "a\n  \n\t\n \nb", "a\n\nb"},
		{"handles carriage returns", "a\r\n\r\n\r\nb\r\n", "a\n\nb"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	t.Parallel()

	once := goquery.NormalizeText("Title\n\n\n  Para one  \nPara two\n\n\n\nEnd")

	assert.Equal(t, once, goquery.NormalizeText(once))
}
