package fuzzy

import "testing"

func TestNormalizeRewritesSynonyms(t *testing.T) {
	cases := map[string]string{
		"Display Files":   "show files",
		"remove the file": "delete the file",
		"LIST   FILES":    "list files",
	}
	for in, want := range cases {
		if got := Normalize(in, ""); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	if got := Normalize("café", ""); got != "cafe" {
		t.Fatalf("Normalize(café) = %q, want cafe", got)
	}
}

func TestNormalizeMultilingual(t *testing.T) {
	if got := Normalize("listar archivos", "es"); got != "list files" {
		t.Fatalf("es Normalize = %q, want %q", got, "list files")
	}
	if got := Normalize("lister fichiers", "fr"); got != "list files" {
		t.Fatalf("fr Normalize = %q, want %q", got, "list files")
	}
	// Unknown language codes leave the phrase alone.
	if got := Normalize("listar archivos", "xx"); got != "listar archivos" {
		t.Fatalf("unknown language Normalize = %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize("   ", ""); got != "" {
		t.Fatalf("Normalize(whitespace) = %q, want empty", got)
	}
}

func TestTokensDropStopwords(t *testing.T) {
	got := Tokens("show me the files in a directory")
	want := []string{"show", "files", "directory"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokens = %v, want %v", got, want)
		}
	}
}

func TestPatternKeyPicksLongestWordsSorted(t *testing.T) {
	// Significant words: show, kubernetes, deployment, production ->
	// three longest are kubernetes, deployment, production, sorted.
	got := PatternKey("show the kubernetes deployment in production")
	want := "deployment kubernetes production"
	if got != want {
		t.Fatalf("PatternKey = %q, want %q", got, want)
	}
}

func TestPatternKeyStableAcrossWordOrder(t *testing.T) {
	a := PatternKey("files list hidden")
	b := PatternKey("hidden files list")
	if a == "" || a != b {
		t.Fatalf("pattern keys differ: %q vs %q", a, b)
	}
}

func TestPatternKeyEmpty(t *testing.T) {
	if got := PatternKey("the a of"); got != "" {
		t.Fatalf("stopword-only phrase should give empty key, got %q", got)
	}
}
