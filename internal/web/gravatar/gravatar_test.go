package gravatar

import (
	"strings"
	"testing"
)

func TestURLNormalizesEmail(t *testing.T) {
	t.Parallel()

	a := URL("Reader@Example.COM")
	b := URL("  reader@example.com  ")
	if a != b {
		t.Fatalf("expected normalized addresses to match:\n%s\n%s", a, b)
	}
	// md5("reader@example.com")
	if !strings.Contains(a, "/avatar/baa0f4114eafbdd39ce828d01b849ae6") {
		t.Fatalf("unexpected hash in %s", a)
	}
	if !strings.Contains(a, "s=100") || !strings.Contains(a, "d=retro") || !strings.Contains(a, "r=g") {
		t.Fatalf("missing query params in %s", a)
	}
}

func TestURLWithSize(t *testing.T) {
	t.Parallel()

	if got := URLWithSize("reader@example.com", 40); !strings.Contains(got, "s=40") {
		t.Fatalf("expected s=40 in %s", got)
	}
	if got := URLWithSize("reader@example.com", 0); !strings.Contains(got, "s=100") {
		t.Fatalf("expected default size in %s", got)
	}
}
