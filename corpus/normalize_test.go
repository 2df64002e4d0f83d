package corpus

import "testing"

func TestCleanText_StripsHTMLAndCollapsesWhitespace(t *testing.T) {
	got, ok := CleanText("  <b>Bula</b>   vinaka\t ")
	if !ok {
		t.Fatal("CleanText() reported encoding error")
	}
	if got != "Bula vinaka" {
		t.Errorf("CleanText() = %q, want %q", got, "Bula vinaka")
	}
}

func TestCleanText_CanonicalizesPunctuation(t *testing.T) {
	got, ok := CleanText("“Bula” — ‘io’…")
	if !ok {
		t.Fatal("CleanText() reported encoding error")
	}
	want := `"Bula" - 'io'...`
	if got != want {
		t.Errorf("CleanText() = %q, want %q", got, want)
	}
}

func TestCleanText_StripsControlCharacters(t *testing.T) {
	got, ok := CleanText("bula\x07 vinaka")
	if !ok {
		t.Fatal("CleanText() reported encoding error")
	}
	if got != "bula vinaka" {
		t.Errorf("CleanText() = %q, want %q", got, "bula vinaka")
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"  <b>Bula</b>   vinaka\t ",
		"“Bula” — ‘io’…",
		"Na noda vanua e dau yacovi kina.",
		"caf\xe9 au lait",
	}
	for _, in := range inputs {
		once, ok := CleanText(in)
		if !ok {
			t.Fatalf("CleanText(%q) reported encoding error", in)
		}
		twice, ok := CleanText(once)
		if !ok {
			t.Fatalf("CleanText(CleanText(%q)) reported encoding error", in)
		}
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanText_RepairsWindows1252(t *testing.T) {
	// 0xE9 is é in Windows-1252 but invalid as a standalone UTF-8 byte.
	got, ok := CleanText("caf\xe9 au lait")
	if !ok {
		t.Fatal("CleanText() reported encoding error for repairable input")
	}
	if got != "café au lait" {
		t.Errorf("CleanText() = %q, want %q", got, "café au lait")
	}
}

func TestCleanText_UnrecoverableEncoding(t *testing.T) {
	// 0x81 has no Windows-1252 assignment, so repair cannot recover it.
	if _, ok := CleanText("bula \x81\x81 vinaka"); ok {
		t.Error("CleanText() accepted unrecoverable bytes")
	}
	// Pre-existing replacement runes mean the text was already mangled upstream.
	if _, ok := CleanText("bula � vinaka"); ok {
		t.Error("CleanText() accepted text containing replacement runes")
	}
}

func TestDedupKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := DedupKey("Bula   Vinaka")
	b := DedupKey("bula vinaka")
	if a != b {
		t.Errorf("DedupKey mismatch for equivalent content: %s != %s", a, b)
	}
	if a == DedupKey("bula vinakas") {
		t.Error("DedupKey collision for different content")
	}
}

func TestTokenCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"Io.", 1},
		{"Na noda vanua", 3},
		{"  a \t b  ", 2},
	}
	for _, tc := range cases {
		if got := TokenCount(tc.in); got != tc.want {
			t.Errorf("TokenCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
