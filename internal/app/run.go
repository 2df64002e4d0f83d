// Package app wires configuration, logging and the corpus pipeline together
// for the command-line entry point.
package app

import (
	"fmt"
	"sort"

	"fijiandata/corpus/corpus"
)

// Options carries the command-line parameters for one pipeline run.
type Options struct {
	ConfigPath string
	InputDir   string
	OutputDir  string
	Verbose    bool
}

// Run executes the pipeline once and logs a summary. Only fatal errors
// (missing input directory, unwritable output) are returned; file-level
// failures are reflected in metadata.json and the summary.
func Run(opts Options) error {
	cfg, err := corpus.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := NewLogger(opts.Verbose)

	pipe := corpus.NewPipeline(cfg, logger)
	report, err := pipe.Run(opts.InputDir, opts.OutputDir)
	if err != nil {
		return err
	}

	logger.Info("partitions",
		"train", report.Partitions[corpus.PartitionTrain],
		"validation", report.Partitions[corpus.PartitionValidation],
		"test", report.Partitions[corpus.PartitionTest])

	reasons := make([]corpus.Reason, 0, len(report.Stats.RecordsRejectedByReason))
	for reason := range report.Stats.RecordsRejectedByReason {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	for _, reason := range reasons {
		logger.Info("rejections", "reason", string(reason), "count", report.Stats.RecordsRejectedByReason[reason])
	}
	return nil
}
