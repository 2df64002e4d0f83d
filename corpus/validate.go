package corpus

import "unicode"

// Outcome is the tagged result of cleaning and validating one RawRecord:
// either a CleanedRecord or a rejection Reason, never both.
type Outcome struct {
	Valid  bool
	Record CleanedRecord
	Reason Reason
}

type rule struct {
	reason Reason
	fails  func(rec CleanedRecord) bool
}

// Cleaner transforms RawRecords into CleanedRecords or rejects them.
type Cleaner struct {
	minTokens          int
	printableThreshold float64
	rules              []rule
}

// NewCleaner builds a Cleaner from the pipeline configuration.
func NewCleaner(cfg Config) *Cleaner {
	c := &Cleaner{
		minTokens:          cfg.MinTokens,
		printableThreshold: cfg.PrintableThreshold,
	}
	// Rule order decides which reason a multiply-failing record lands in.
	c.rules = []rule{
		{ReasonTooShort, func(rec CleanedRecord) bool {
			body := rec.Sentence
			if rec.Kind == SourceDictionary {
				body = rec.Definition
			}
			return TokenCount(body) < c.minTokens
		}},
		{ReasonMissingHeadword, func(rec CleanedRecord) bool {
			return rec.Kind == SourceDictionary && rec.Headword == ""
		}},
		{ReasonLowPrintableRatio, func(rec CleanedRecord) bool {
			return printableRatio(rec.Content()) < c.printableThreshold
		}},
	}
	return c
}

// Process cleans every text field of raw and evaluates the validation rules
// in order. The first failing rule determines the rejection reason.
func (c *Cleaner) Process(raw RawRecord) Outcome {
	rec := CleanedRecord{Kind: raw.Kind, Source: raw.Source, Line: raw.Line}
	fields := []struct {
		src string
		dst *string
	}{
		{raw.Headword, &rec.Headword},
		{raw.Definition, &rec.Definition},
		{raw.PartOfSpeech, &rec.PartOfSpeech},
		{raw.Example, &rec.Example},
		{raw.Sentence, &rec.Sentence},
	}
	for _, f := range fields {
		cleaned, ok := CleanText(f.src)
		if !ok {
			return Outcome{Reason: ReasonEncodingError}
		}
		*f.dst = cleaned
	}
	for _, r := range c.rules {
		if r.fails(rec) {
			return Outcome{Reason: r.reason}
		}
	}
	return Outcome{Valid: true, Record: rec}
}

func printableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if r == ' ' || unicode.IsPrint(r) {
			printable++
		}
	}
	return float64(printable) / float64(total)
}
