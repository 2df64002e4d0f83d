package corpus

import "strings"

const (
	definitionInstruction = "Define the Fijian word: "
	completionInstruction = "Complete the following Fijian text:"
)

// Synthesizer maps admitted CleanedRecords to TrainingExamples. The mapping
// is deterministic: the same record always yields the same examples.
type Synthesizer struct {
	completionMinTokens int
}

// NewSynthesizer builds a Synthesizer from the pipeline configuration.
func NewSynthesizer(cfg Config) *Synthesizer {
	return &Synthesizer{completionMinTokens: cfg.CompletionMinTokens}
}

// Examples derives zero or more TrainingExamples from a CleanedRecord.
// Dictionary records yield one definition example. Text records yield one
// completion example when the sentence is long enough to split into a
// prefix/continuation pair; shorter sentences yield none, which is not an
// error.
func (s *Synthesizer) Examples(rec CleanedRecord) []TrainingExample {
	switch rec.Kind {
	case SourceDictionary:
		return []TrainingExample{{
			Instruction: definitionInstruction + rec.Headword,
			Input:       rec.Headword,
			Output:      rec.Definition,
			TaskType:    TaskDefinition,
		}}
	case SourceText:
		tokens := strings.Fields(rec.Sentence)
		if len(tokens) < s.completionMinTokens {
			return nil
		}
		mid := len(tokens) / 2
		return []TrainingExample{{
			Instruction: completionInstruction,
			Input:       strings.Join(tokens[:mid], " "),
			Output:      strings.Join(tokens[mid:], " "),
			TaskType:    TaskCompletion,
		}}
	}
	return nil
}
