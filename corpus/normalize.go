package corpus

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// punctReplacer unifies quote, dash and ellipsis variants to a canonical form.
var punctReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "′", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"‒", "-", "–", "-", "—", "-", "−", "-",
	"…", "...",
)

// CleanText applies the cleaning steps in order: encoding repair, HTML tag
// and control character removal, whitespace normalization (NFKC, collapse,
// trim), punctuation canonicalization. Each step is idempotent. The second
// return value is false when the text has unrecoverable encoding damage.
func CleanText(text string) (string, bool) {
	text, ok := repairEncoding(text)
	if !ok {
		return "", false
	}
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = stripControl(text)
	text = norm.NFKC.String(text)
	text = strings.Join(strings.Fields(text), " ")
	text = punctReplacer.Replace(text)
	return text, true
}

// repairEncoding returns valid UTF-8 for the input, re-decoding broken byte
// sequences as Windows-1252. The decoder maps bytes with no Windows-1252
// assignment to C1 control runes, so a repaired string containing those was
// never Windows-1252 to begin with and is reported as unrecoverable, as is
// text carrying replacement runes from upstream mangling.
func repairEncoding(text string) (string, bool) {
	if !utf8.ValidString(text) {
		decoded, err := charmap.Windows1252.NewDecoder().String(text)
		if err != nil || strings.ContainsFunc(decoded, isC1Control) {
			return "", false
		}
		text = decoded
	}
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

func isC1Control(r rune) bool {
	return r >= 0x80 && r <= 0x9f
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// DedupKey hashes normalized text content case- and whitespace-insensitively.
func DedupKey(text string) string {
	folded := strings.ToLower(strings.Join(strings.Fields(text), " "))
	h := sha1.Sum([]byte(folded))
	return hex.EncodeToString(h[:])
}

// TokenCount counts whitespace-separated tokens.
func TokenCount(text string) int {
	return len(strings.Fields(text))
}
