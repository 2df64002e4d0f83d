package corpus

// SkippedFile records a file-level failure surfaced in metadata.json.
type SkippedFile struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// PipelineStats accumulates per-run counters. One instance is owned by a
// single pipeline run; callers read it only after the run completes.
type PipelineStats struct {
	FilesProcessed          int            `json:"files_processed"`
	FilesSkipped            []SkippedFile  `json:"files_skipped,omitempty"`
	RecordsSeen             int            `json:"records_seen"`
	RecordsValid            int            `json:"records_valid"`
	RecordsRejectedByReason map[Reason]int `json:"records_rejected_by_reason"`
	DuplicatesRemoved       int            `json:"duplicates_removed"`
}

// NewPipelineStats returns a zeroed accumulator.
func NewPipelineStats() *PipelineStats {
	return &PipelineStats{
		RecordsRejectedByReason: make(map[Reason]int),
	}
}

// Reject increments exactly one reason bucket. Every rejected record passes
// through here so that RecordsSeen == RecordsValid + sum(rejected) holds.
func (s *PipelineStats) Reject(reason Reason) {
	s.RecordsRejectedByReason[reason]++
}

// RecordsRejected returns the total across all reason buckets.
func (s *PipelineStats) RecordsRejected() int {
	total := 0
	for _, n := range s.RecordsRejectedByReason {
		total += n
	}
	return total
}

// SkipFile records a file-level failure without aborting the run.
func (s *PipelineStats) SkipFile(file, reason string) {
	s.FilesSkipped = append(s.FilesSkipped, SkippedFile{File: file, Reason: reason})
}
