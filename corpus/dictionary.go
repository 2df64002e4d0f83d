package corpus

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// tabularDictionaryParser reads columnar dictionary data (CSV or TSV) with a
// header row. Column names are matched case-insensitively against the
// configured synonym lists.
type tabularDictionaryParser struct {
	cfg   Config
	comma rune
}

func (p *tabularDictionaryParser) Kind() SourceKind { return SourceDictionary }

func (p *tabularDictionaryParser) Parse(path string, data []byte) ([]RawRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = p.comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDictionary, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedDictionary)
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	headwordCol := findColumn(header, p.cfg.HeadwordColumns)
	definitionCol := findColumn(header, p.cfg.DefinitionColumns)
	if headwordCol < 0 || definitionCol < 0 {
		return nil, fmt.Errorf("%w: no headword/definition columns in %v", ErrMalformedDictionary, header)
	}
	posCol := findColumn(header, p.cfg.POSColumns)
	exampleCol := findColumn(header, p.cfg.ExampleColumns)

	records := make([]RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := RawRecord{
			Kind:       SourceDictionary,
			Headword:   cellAt(row, headwordCol),
			Definition: cellAt(row, definitionCol),
			Source:     path,
			Line:       i + 2, // 1-based, after the header row
		}
		if posCol >= 0 {
			rec.PartOfSpeech = cellAt(row, posCol)
		}
		if exampleCol >= 0 {
			rec.Example = cellAt(row, exampleCol)
		}
		records = append(records, rec)
	}
	return records, nil
}

// pairDictionaryParser reads contributed "headword - definition" word lists.
// Lines without the separator carry no extractable pair and are passed over.
type pairDictionaryParser struct{}

const pairSeparator = " - "

func (p *pairDictionaryParser) Kind() SourceKind { return SourceDictionary }

func (p *pairDictionaryParser) Parse(path string, data []byte) ([]RawRecord, error) {
	var records []RawRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		headword, definition, ok := strings.Cut(text, pairSeparator)
		if !ok {
			continue
		}
		records = append(records, RawRecord{
			Kind:       SourceDictionary,
			Headword:   headword,
			Definition: definition,
			Source:     path,
			Line:       line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return records, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}
