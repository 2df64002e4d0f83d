package corpus

// Deduplicator tracks normalized-content hashes for one pipeline run.
// First occurrence wins; callers must feed records in ingestion order
// (lexicographic file order, then within-file order) for the tie-break to
// hold. Not safe for concurrent use; the merge stage is sequential.
type Deduplicator struct {
	seen map[string]struct{}
}

// NewDeduplicator returns an empty run-scoped set.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Admit registers the record's content hash, reporting false when an earlier
// record already claimed it.
func (d *Deduplicator) Admit(rec CleanedRecord) bool {
	key := DedupKey(rec.Content())
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Len returns the number of distinct admitted records.
func (d *Deduplicator) Len() int { return len(d.seen) }
