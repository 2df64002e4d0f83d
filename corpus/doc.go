// Package corpus normalizes raw Fijian language files into clean,
// deduplicated training data.
//
// A Pipeline run walks an input directory, dispatches each file to a
// dictionary or plain-text parser, cleans and validates every record,
// removes duplicates, synthesizes instruction-tuning examples and writes
// JSONL outputs plus a metadata summary:
//
//	cfg, err := corpus.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := corpus.NewPipeline(cfg, nil).Run("raw_data", "clean_data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("valid records: %d\n", report.Stats.RecordsValid)
//
// Given identical inputs and configuration, the data outputs are byte for
// byte reproducible; only metadata.json varies across runs (run ID and
// timestamp).
package corpus
