package corpus

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser converts raw file contents into RawRecords.
type Parser interface {
	Kind() SourceKind
	Parse(path string, data []byte) ([]RawRecord, error)
}

// ParserFor classifies a file by extension plus a lightweight content sniff
// and returns the parser to use. It is a pure function of path and contents.
func ParserFor(cfg Config, path string, data []byte) (Parser, error) {
	name := strings.ToLower(filepath.Base(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &tabularDictionaryParser{cfg: cfg, comma: ','}, nil
	case ".tsv":
		return &tabularDictionaryParser{cfg: cfg, comma: '\t'}, nil
	case ".txt":
		// Contributed word lists arrive as "headword - definition" text
		// files named fijian_dictionary_*.txt and similar.
		if strings.Contains(name, "dict") {
			return &pairDictionaryParser{}, nil
		}
		return &textParser{}, nil
	}
	if p := sniffParser(cfg, data); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// sniffParser inspects file contents when the extension is unrecognized:
// a header row naming a headword and a definition column selects the tabular
// dictionary parser; otherwise mostly-printable text is treated as a corpus.
func sniffParser(cfg Config, data []byte) Parser {
	head := firstLine(data)
	for _, comma := range []rune{',', '\t'} {
		fields := strings.Split(head, string(comma))
		for i, f := range fields {
			fields[i] = cleanCell(f)
		}
		if findColumn(fields, cfg.HeadwordColumns) >= 0 && findColumn(fields, cfg.DefinitionColumns) >= 0 {
			return &tabularDictionaryParser{cfg: cfg, comma: comma}
		}
	}
	if looksLikeText(data) {
		return &textParser{}
	}
	return nil
}

func firstLine(data []byte) string {
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r")
}

// looksLikeText reports whether a sample of the contents is valid UTF-8 made
// of printable runes, guarding against binary files.
func looksLikeText(data []byte) bool {
	const sampleSize = 4096
	if len(data) == 0 {
		return false
	}
	sample := data
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
		for len(sample) > 0 && !utf8.Valid(sample) {
			sample = sample[:len(sample)-1]
		}
	}
	if !utf8.Valid(sample) {
		return false
	}
	total, printable := 0, 0
	for _, r := range string(sample) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || r == ' ' || unicode.IsPrint(r) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) >= 0.95
}
