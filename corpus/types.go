package corpus

// SourceKind identifies which parser produced a record.
type SourceKind string

const (
	// SourceDictionary marks records extracted from tabular or word-definition files.
	SourceDictionary SourceKind = "dictionary"
	// SourceText marks records extracted from one-sentence-per-line corpora.
	SourceText SourceKind = "text"
	// SourceUnknown marks files no parser accepts.
	SourceUnknown SourceKind = "unknown"
)

// TaskType labels the kind of instruction-following example a TrainingExample represents.
type TaskType string

const (
	// TaskDefinition asks the model to define a headword.
	TaskDefinition TaskType = "definition"
	// TaskCompletion asks the model to continue a sentence prefix.
	TaskCompletion TaskType = "completion"
	// TaskTranslation is reserved for parallel-corpus sources; no current
	// parser emits it.
	TaskTranslation TaskType = "translation"
)

// Reason identifies why a record was rejected during cleaning or validation.
type Reason string

const (
	ReasonEncodingError     Reason = "encoding_error"
	ReasonTooShort          Reason = "too_short"
	ReasonMissingHeadword   Reason = "missing_headword"
	ReasonLowPrintableRatio Reason = "low_printable_ratio"
)

// RawRecord is an un-validated unit extracted from an input file.
// Dictionary records fill Headword/Definition (and optionally PartOfSpeech
// and Example); text records fill Sentence and Line.
type RawRecord struct {
	Kind         SourceKind
	Headword     string
	Definition   string
	PartOfSpeech string
	Example      string
	Sentence     string
	Source       string
	Line         int
}

// CleanedRecord is a RawRecord that survived cleaning and validation.
// It is never mutated after the cleaner produces it.
type CleanedRecord struct {
	Kind         SourceKind
	Headword     string
	Definition   string
	PartOfSpeech string
	Example      string
	Sentence     string
	Source       string
	Line         int
}

// Content returns the text the record contributes to the corpus: the
// sentence for text records, headword plus definition for dictionary entries.
// Dedup keys and the printable-ratio check operate on this.
func (r CleanedRecord) Content() string {
	if r.Kind == SourceDictionary {
		return r.Headword + " " + r.Definition
	}
	return r.Sentence
}

// TrainingExample is the output unit written to the partition files.
type TrainingExample struct {
	Instruction string   `json:"instruction"`
	Input       string   `json:"input"`
	Output      string   `json:"output"`
	TaskType    TaskType `json:"task_type"`
}

// DictionaryEntry is the persisted view of a cleaned dictionary record,
// written to fijian_dictionary.jsonl.
type DictionaryEntry struct {
	Headword     string `json:"fijian_word"`
	Definition   string `json:"english_definition"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Example      string `json:"example,omitempty"`
	Source       string `json:"source"`
}

// TextEntry is the persisted view of a cleaned text sentence,
// written to fijian_text.jsonl.
type TextEntry struct {
	Text string `json:"text"`
}
