package langs

import (
	"sort"
	"testing"
)

func TestSupported(t *testing.T) {
	for _, name := range []string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"} {
		if !Supported(name) {
			t.Fatalf("expected %q to be supported", name)
		}
	}
	for _, name := range []string{"French", "english", "TAMIL", "", "Esperanto"} {
		if Supported(name) {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestTag(t *testing.T) {
	tag, ok := Tag("Hindi")
	if !ok {
		t.Fatal("expected a tag for Hindi")
	}
	if got := tag.String(); got != "hi" {
		t.Fatalf("Hindi tag = %q, want %q", got, "hi")
	}
	if _, ok := Tag("Klingon"); ok {
		t.Fatal("expected no tag for Klingon")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 5 {
		t.Fatalf("expected 5 names, got %d: %v", len(names), names)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	for _, n := range names {
		if !Supported(n) {
			t.Fatalf("Names() returned unsupported language %q", n)
		}
	}
}
