package markdown

import (
	"strings"
	"testing"
)

func TestConverterRendersDigestBlocks(t *testing.T) {
	conv := NewConverter()
	src := strings.Join([]string{
		"## Release week",
		"",
		"2024-03-08",
		"",
		"![Release week](https://cdn.example.com/release.png)",
		"",
		"Shipped a lot...",
		"",
		"[Read more](https://blog.example.com/release-week/)",
	}, "\n")

	out, err := conv.Convert(src)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, want := range []string{
		"<h2",
		"Release week",
		`<img src="https://cdn.example.com/release.png"`,
		`<a href="https://blog.example.com/release-week/">Read more</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConverterKeepsRawHTML(t *testing.T) {
	conv := NewConverter()
	out, err := conv.Convert("## Post\n\n<p>Body with <strong>markup</strong>.</p>\n")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "<p>Body with <strong>markup</strong>.</p>") {
		t.Fatalf("raw html must pass through, got:\n%s", out)
	}
}

func TestConverterEmptyInput(t *testing.T) {
	conv := NewConverter()
	out, err := conv.Convert("")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
