package reports

// Report is a generated analytical report fetched read-only by id. ReportData
// holds the loosely-typed analytical payload (summary statistics, optional
// visualization specs, optional AI-analysis section); the client treats its
// internal shape as opaque.
type Report struct {
	ID         int64          `json:"id"`
	Filename   string         `json:"filename"`
	UploadDate string         `json:"upload_date"`
	ReportData map[string]any `json:"report_data"`
}

// Summary is one row of the report listing.
type Summary struct {
	ReportID   int64  `json:"report_id"`
	FileID     int64  `json:"file_id"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`
	Status     string `json:"status"`
	ReportDate string `json:"report_date"`
}
