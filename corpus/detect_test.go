package corpus

import (
	"errors"
	"testing"
)

func TestParserFor_ByExtension(t *testing.T) {
	cfg := testConfig()
	cases := []struct {
		path string
		want SourceKind
	}{
		{"data/dict.csv", SourceDictionary},
		{"data/dict.tsv", SourceDictionary},
		{"data/corpus.txt", SourceText},
		{"data/fijian_dictionary_2021_words.txt", SourceDictionary},
	}
	for _, tc := range cases {
		p, err := ParserFor(cfg, tc.path, []byte("bula vinaka"))
		if err != nil {
			t.Fatalf("ParserFor(%s) error: %v", tc.path, err)
		}
		if p.Kind() != tc.want {
			t.Errorf("ParserFor(%s).Kind() = %s, want %s", tc.path, p.Kind(), tc.want)
		}
	}
}

func TestParserFor_SniffsDictionaryHeader(t *testing.T) {
	data := []byte("fijian_word,english_definition\nbula,a greeting\n")
	p, err := ParserFor(testConfig(), "export.dat", data)
	if err != nil {
		t.Fatalf("ParserFor() error: %v", err)
	}
	if p.Kind() != SourceDictionary {
		t.Errorf("Kind() = %s, want %s", p.Kind(), SourceDictionary)
	}
}

func TestParserFor_SniffsPlainText(t *testing.T) {
	data := []byte("Na noda vanua e dau yacovi kina.\nE dua na siga vinaka.\n")
	p, err := ParserFor(testConfig(), "corpus.dat", data)
	if err != nil {
		t.Fatalf("ParserFor() error: %v", err)
	}
	if p.Kind() != SourceText {
		t.Errorf("Kind() = %s, want %s", p.Kind(), SourceText)
	}
}

func TestParserFor_RejectsBinary(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0xFE, 0x89, 0x50, 0x4E, 0x47}
	_, err := ParserFor(testConfig(), "image.bin", data)
	if err == nil {
		t.Fatal("ParserFor() accepted binary content")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}
