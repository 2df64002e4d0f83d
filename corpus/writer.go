package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Output file names inside the output directory.
const (
	DictionaryFile = "fijian_dictionary.jsonl"
	TextFile       = "fijian_text.jsonl"
	TrainFile      = "fijian_training_data.jsonl"
	ValidationFile = "fijian_validation_data.jsonl"
	TestFile       = "fijian_test_data.jsonl"
	MetadataFile   = "metadata.json"
)

// Metadata is the run summary written to metadata.json: the final stats
// snapshot plus run parameters.
type Metadata struct {
	RunID       string         `json:"run_id"`
	InputDir    string         `json:"input_dir"`
	OutputDir   string         `json:"output_dir"`
	GeneratedAt time.Time      `json:"generated_at"`
	Stats       *PipelineStats `json:"stats"`
}

// writeJSONL writes one JSON object per line. HTML escaping is disabled so
// cleaned text round-trips unmangled.
func writeJSONL[T any](path string, items []T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	return writeAtomic(path, buf.Bytes())
}

func writeMetadata(path string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return writeAtomic(path, append(data, '\n'))
}

// writeAtomic writes via a temp file and rename so a failed run never leaves
// a truncated output behind.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
