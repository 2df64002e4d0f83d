package corpus

import (
	"crypto/sha1"
	"encoding/binary"
)

// PartitionName identifies one of the disjoint output subsets.
type PartitionName string

const (
	PartitionTrain      PartitionName = "train"
	PartitionValidation PartitionName = "validation"
	PartitionTest       PartitionName = "test"
)

// Partitioner assigns examples to train/validation/test buckets using a
// stable content hash, so assignment is a pure function of the example and
// re-running on unchanged input reproduces it exactly regardless of
// processing order.
type Partitioner struct {
	trainBelow      uint32
	validationBelow uint32
}

// NewPartitioner builds a Partitioner with the configured percentage
// thresholds (default 80/10/10).
func NewPartitioner(cfg Config) *Partitioner {
	return &Partitioner{
		trainBelow:      uint32(cfg.TrainPercent),
		validationBelow: uint32(cfg.TrainPercent + cfg.ValidationPercent),
	}
}

// Assign returns the partition for an example.
func (p *Partitioner) Assign(ex TrainingExample) PartitionName {
	h := sha1.Sum([]byte(ex.Instruction + "|" + ex.Input + "|" + ex.Output))
	bucket := binary.BigEndian.Uint32(h[:4]) % 100
	switch {
	case bucket < p.trainBelow:
		return PartitionTrain
	case bucket < p.validationBelow:
		return PartitionValidation
	default:
		return PartitionTest
	}
}

// Split groups examples by partition, preserving input order within each.
func (p *Partitioner) Split(examples []TrainingExample) map[PartitionName][]TrainingExample {
	out := map[PartitionName][]TrainingExample{
		PartitionTrain:      {},
		PartitionValidation: {},
		PartitionTest:       {},
	}
	for _, ex := range examples {
		name := p.Assign(ex)
		out[name] = append(out[name], ex)
	}
	return out
}
