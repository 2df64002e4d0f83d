package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_Definition(t *testing.T) {
	s := NewSynthesizer(testConfig())
	examples := s.Examples(CleanedRecord{
		Kind:       SourceDictionary,
		Headword:   "bula",
		Definition: "hello, life, good health",
	})

	require.Len(t, examples, 1)
	assert.Equal(t, TrainingExample{
		Instruction: "Define the Fijian word: bula",
		Input:       "bula",
		Output:      "hello, life, good health",
		TaskType:    TaskDefinition,
	}, examples[0])
}

func TestExamples_CompletionSplit(t *testing.T) {
	s := NewSynthesizer(testConfig())
	sentence := "Na noda vanua e dau yacovi kina na veikau vinaka duadua."
	examples := s.Examples(CleanedRecord{Kind: SourceText, Sentence: sentence})

	require.Len(t, examples, 1)
	ex := examples[0]
	assert.Equal(t, TaskCompletion, ex.TaskType)
	assert.Equal(t, "Complete the following Fijian text:", ex.Instruction)
	assert.NotEmpty(t, ex.Input)
	assert.NotEmpty(t, ex.Output)
	// Prefix plus continuation reconstructs the sentence.
	assert.Equal(t, sentence, ex.Input+" "+ex.Output)
}

func TestExamples_ShortSentenceProducesNothing(t *testing.T) {
	s := NewSynthesizer(testConfig())
	examples := s.Examples(CleanedRecord{Kind: SourceText, Sentence: "E dua na siga vinaka"})
	assert.Empty(t, examples) // 5 tokens, below the completion minimum
}

func TestExamples_Deterministic(t *testing.T) {
	s := NewSynthesizer(testConfig())
	rec := CleanedRecord{Kind: SourceText, Sentence: strings.Repeat("vosa ", 7) + "vakaviti"}
	first := s.Examples(rec)
	second := s.Examples(rec)
	assert.Equal(t, first, second)
}
