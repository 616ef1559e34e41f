package upload

// outcomeKind tags which identifier an Outcome carries.
type outcomeKind int

const (
	outcomeReportReady outcomeKind = iota + 1
	outcomeFileStored
)

// Outcome is the tagged result of a successful upload. Exactly one of the two
// tags is populated; callers must check which.
type Outcome struct {
	kind outcomeKind
	id   int64
}

// NewReportReady builds the outcome for a synchronously generated report.
func NewReportReady(reportID int64) Outcome {
	return Outcome{kind: outcomeReportReady, id: reportID}
}

// NewFileStored builds the outcome for a file accepted without a report.
func NewFileStored(fileID int64) Outcome {
	return Outcome{kind: outcomeFileStored, id: fileID}
}

// ReportReady returns the report id when the server completed analysis
// synchronously.
func (o Outcome) ReportReady() (int64, bool) {
	if o.kind != outcomeReportReady {
		return 0, false
	}
	return o.id, true
}

// FileStored returns the file id when the server accepted the upload but
// produced no report yet.
func (o Outcome) FileStored() (int64, bool) {
	if o.kind != outcomeFileStored {
		return 0, false
	}
	return o.id, true
}
