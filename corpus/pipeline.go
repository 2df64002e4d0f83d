package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs one ingestion pass over an input directory. All mutable
// state (stats, dedup set) is created per run, so a Pipeline can be reused.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// Report is the read-only result of a completed run.
type Report struct {
	RunID      string
	Stats      *PipelineStats
	Examples   int
	Partitions map[PartitionName]int
}

// NewPipeline creates a Pipeline with the given configuration.
func NewPipeline(cfg Config, logger *slog.Logger) *Pipeline {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// fileResult is the independent partial result of parsing one file.
type fileResult struct {
	path    string // relative to the input directory
	records []RawRecord
	err     error
}

// Run ingests every file under inputDir and writes the output files to
// outputDir. A missing input directory is the only input-side fatal error;
// per-file failures are absorbed into the stats and the run continues.
func (p *Pipeline) Run(inputDir, outputDir string) (*Report, error) {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, inputDir)
	}

	files, err := listFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputDirNotFound, inputDir, err)
	}

	// Parse stage: each file produces an independent partial result. The
	// merge below consumes results in lexicographic file order, so the dedup
	// tie-break is identical whether or not files were parsed in parallel.
	results := p.parseAll(inputDir, files)

	stats := NewPipelineStats()
	cleaner := NewCleaner(p.cfg)
	dedup := NewDeduplicator()
	synth := NewSynthesizer(p.cfg)

	var dictEntries []DictionaryEntry
	var textEntries []TextEntry
	var examples []TrainingExample

	for _, res := range results {
		if res.err != nil {
			p.logger.Warn("skipping file", slog.String("file", res.path), slog.String("error", res.err.Error()))
			stats.SkipFile(res.path, res.err.Error())
			continue
		}
		stats.FilesProcessed++
		p.logger.Debug("processing file", slog.String("file", res.path), slog.Int("records", len(res.records)))

		for _, raw := range res.records {
			stats.RecordsSeen++
			outcome := cleaner.Process(raw)
			if !outcome.Valid {
				stats.Reject(outcome.Reason)
				p.logger.Debug("record rejected",
					slog.String("file", raw.Source),
					slog.Int("line", raw.Line),
					slog.String("reason", string(outcome.Reason)))
				continue
			}
			stats.RecordsValid++
			if !dedup.Admit(outcome.Record) {
				stats.DuplicatesRemoved++
				continue
			}
			rec := outcome.Record
			switch rec.Kind {
			case SourceDictionary:
				dictEntries = append(dictEntries, DictionaryEntry{
					Headword:     rec.Headword,
					Definition:   rec.Definition,
					PartOfSpeech: rec.PartOfSpeech,
					Example:      rec.Example,
					Source:       rec.Source,
				})
			case SourceText:
				textEntries = append(textEntries, TextEntry{Text: rec.Sentence})
			}
			examples = append(examples, synth.Examples(rec)...)
		}
	}

	parts := NewPartitioner(p.cfg).Split(examples)

	outputs := []struct {
		name  string
		write func(path string) error
	}{
		{DictionaryFile, func(path string) error { return writeJSONL(path, dictEntries) }},
		{TextFile, func(path string) error { return writeJSONL(path, textEntries) }},
		{TrainFile, func(path string) error { return writeJSONL(path, parts[PartitionTrain]) }},
		{ValidationFile, func(path string) error { return writeJSONL(path, parts[PartitionValidation]) }},
		{TestFile, func(path string) error { return writeJSONL(path, parts[PartitionTest]) }},
	}
	for _, out := range outputs {
		if err := out.write(filepath.Join(outputDir, out.name)); err != nil {
			return nil, err
		}
	}

	meta := Metadata{
		RunID:       uuid.NewString(),
		InputDir:    inputDir,
		OutputDir:   outputDir,
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
	}
	if err := writeMetadata(filepath.Join(outputDir, MetadataFile), meta); err != nil {
		return nil, err
	}

	p.logger.Info("pipeline complete",
		slog.String("run_id", meta.RunID),
		slog.Int("files_processed", stats.FilesProcessed),
		slog.Int("files_skipped", len(stats.FilesSkipped)),
		slog.Int("records_valid", stats.RecordsValid),
		slog.Int("records_rejected", stats.RecordsRejected()),
		slog.Int("duplicates_removed", stats.DuplicatesRemoved),
		slog.Int("examples", len(examples)))

	return &Report{
		RunID:    meta.RunID,
		Stats:    stats,
		Examples: len(examples),
		Partitions: map[PartitionName]int{
			PartitionTrain:      len(parts[PartitionTrain]),
			PartitionValidation: len(parts[PartitionValidation]),
			PartitionTest:       len(parts[PartitionTest]),
		},
	}, nil
}

// parseAll parses files concurrently up to the configured worker count,
// keeping results indexed by file position for the deterministic merge.
func (p *Pipeline) parseAll(inputDir string, files []string) []fileResult {
	results := make([]fileResult, len(files))
	var g errgroup.Group
	g.SetLimit(p.cfg.Workers)
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			results[i] = p.parseFile(inputDir, rel)
			return nil
		})
	}
	_ = g.Wait() // parse errors live in the per-file results
	return results
}

func (p *Pipeline) parseFile(inputDir, rel string) fileResult {
	res := fileResult{path: rel}
	data, err := os.ReadFile(filepath.Join(inputDir, rel))
	if err != nil {
		res.err = fmt.Errorf("read file: %w", err)
		return res
	}
	parser, err := ParserFor(p.cfg, rel, data)
	if err != nil {
		res.err = err
		return res
	}
	res.records, res.err = parser.Parse(rel, data)
	return res
}

// listFiles returns every regular file under root as a sorted slice of
// slash-separated paths relative to root.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
