package upload

import "errors"

var (
	// ErrNoFile is returned when no file is provided.
	ErrNoFile = errors.New("please select a file first")
	// ErrInvalidFileType is returned for extensions outside the allow-list.
	ErrInvalidFileType = errors.New("invalid file type, only Excel and CSV files are allowed")
	// ErrFileTooLarge is returned when the file exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file size exceeds 50MB limit")
	// ErrTemplateRequired is returned when no template id is supplied.
	ErrTemplateRequired = errors.New("please select a report template first")
	// ErrUploadFailed is returned when the server reports a non-success
	// status on an otherwise successful transport.
	ErrUploadFailed = errors.New("upload failed")
)

// IsValidationError reports whether err is one of the local precondition
// failures that never reach the network.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoFile) ||
		errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrTemplateRequired)
}
