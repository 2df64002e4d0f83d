package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// textParser splits free-text content into one candidate sentence per
// physical line. Input corpora are pre-segmented, so no sentence boundary
// detection happens here. Blank lines are skipped without counting as
// rejections.
type textParser struct{}

func (p *textParser) Kind() SourceKind { return SourceText }

func (p *textParser) Parse(path string, data []byte) ([]RawRecord, error) {
	var records []RawRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		records = append(records, RawRecord{
			Kind:     SourceText,
			Sentence: text,
			Source:   path,
			Line:     line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return records, nil
}
