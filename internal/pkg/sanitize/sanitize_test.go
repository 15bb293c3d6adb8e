package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContentSafety(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain text", input: "Calculus II lecture notes, chapters 1-4", want: true},
		{name: "empty", input: "", want: true},
		{name: "harmless markup", input: "see <b>bold</b> text", want: true},
		{name: "script tag", input: "<script>alert(1)</script>", want: false},
		{name: "script tag with spaces", input: "<  script src='x'>", want: false},
		{name: "uppercase script", input: "<SCRIPT>alert(1)</SCRIPT>", want: false},
		{name: "iframe", input: "<iframe src='http://evil'>", want: false},
		{name: "object tag", input: "<object data='x'>", want: false},
		{name: "embed tag", input: "<embed src='x'>", want: false},
		{name: "javascript uri", input: "click javascript:alert(1)", want: false},
		{name: "javascript uri with space", input: "javascript : alert(1)", want: false},
		{name: "event handler", input: "<img src=x onerror=alert(1)>", want: false},
		{name: "css expression", input: "width: expression(alert(1))", want: false},
		{name: "onward is not a handler", input: "moving onward to chapter 2", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateContentSafety(tt.input))
		})
	}
}

func TestSanitizePlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Linear algebra summary", want: "Linear algebra summary"},
		{name: "strips tags", input: "hello <b>world</b>", want: "hello world"},
		{name: "strips nested tags", input: "<div><p>notes</p></div>", want: "notes"},
		{name: "collapses whitespace", input: "a    b\t\tc", want: "a b c"},
		{name: "trims edges", input: "  padded  ", want: "padded"},
		{name: "keeps entities readable", input: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SanitizePlainText(tt.input))
		})
	}
}
