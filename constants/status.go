package constants

// ExtractionStatus is the canonical status for rows in extractions.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	ExtractionQueued  ExtractionStatus = "QUEUED"  // waiting for the reader
	ExtractionRunning ExtractionStatus = "RUNNING" // reader call in flight
	ExtractionDone    ExtractionStatus = "DONE"    // fields extracted
	ExtractionFailed  ExtractionStatus = "FAILED"  // terminal failure, excluded from aggregation
)

// ExtractionStatusStrings returns the closed list of values for schema
// enums.
func ExtractionStatusStrings() []string {
	return []string{
		string(ExtractionQueued),
		string(ExtractionRunning),
		string(ExtractionDone),
		string(ExtractionFailed),
	}
}
