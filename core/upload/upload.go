package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dataforge-io/dataforge-go/core/gateway"
)

const (
	// MaxFileSize is the upload size ceiling.
	MaxFileSize = 50 * 1024 * 1024
	// defaultUploadTimeout tolerates synchronous server-side report
	// generation, which can take far longer than a plain API call.
	defaultUploadTimeout = 60 * time.Second
)

// allowedExtensions is the tabular-format allow-list, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".csv":  {},
}

// File is the transient upload payload: a named, sized binary blob.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Orchestrator validates and submits uploads through the authenticated
// gateway.
type Orchestrator struct {
	gw      *gateway.Client
	timeout time.Duration
	maxSize int64
}

// Option is a functional option for configuring the orchestrator.
type Option func(*Orchestrator)

// WithTimeout overrides the fixed upload timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxFileSize overrides the upload size ceiling.
func WithMaxFileSize(size int64) Option {
	return func(o *Orchestrator) {
		if size > 0 {
			o.maxSize = size
		}
	}
}

// NewOrchestrator creates an upload orchestrator over the given gateway.
func NewOrchestrator(gw *gateway.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		gw:      gw,
		timeout: defaultUploadTimeout,
		maxSize: MaxFileSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type uploadResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ReportID *int64 `json:"report_id"`
	FileID   *int64 `json:"file_id"`
}

// Upload validates the file and template selection, submits the multipart
// request, and interprets the response into a tagged Outcome. Validation
// failures short-circuit before any network call; network failures carry the
// gateway's classification, so a 401 here triggers the usual session-expiry
// path.
func (o *Orchestrator) Upload(ctx context.Context, file File, templateID int64) (Outcome, error) {
	if err := o.validate(file, templateID); err != nil {
		return Outcome{}, err
	}

	contentType, body, err := encodeForm(file, templateID)
	if err != nil {
		return Outcome{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var resp uploadResponse
	if err := o.gw.Post(ctx, "/api/reports/upload", contentType, body, &resp); err != nil {
		return Outcome{}, err
	}

	if resp.Status != "success" {
		if resp.Message != "" {
			return Outcome{}, fmt.Errorf("%w: %s", ErrUploadFailed, resp.Message)
		}
		return Outcome{}, ErrUploadFailed
	}

	switch {
	case resp.ReportID != nil:
		return NewReportReady(*resp.ReportID), nil
	case resp.FileID != nil:
		return NewFileStored(*resp.FileID), nil
	default:
		// The contract requires one of the two identifiers on success.
		return Outcome{}, gateway.ErrUnexpectedResponse
	}
}

// UploadPath is a convenience wrapper that reads the file from disk.
func (o *Orchestrator) UploadPath(ctx context.Context, path string, templateID int64) (Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return Outcome{}, errors.Join(ErrNoFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Outcome{}, err
	}

	return o.Upload(ctx, File{
		Name:   filepath.Base(path),
		Size:   info.Size(),
		Reader: f,
	}, templateID)
}

func (o *Orchestrator) validate(file File, templateID int64) error {
	if file.Reader == nil || file.Name == "" {
		return ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrInvalidFileType
	}

	if file.Size > o.maxSize {
		return ErrFileTooLarge
	}

	if templateID <= 0 {
		return ErrTemplateRequired
	}
	return nil
}

// encodeForm builds the multipart body carrying the file and template id.
func encodeForm(file File, templateID int64) (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return "", nil, fmt.Errorf("failed to read upload payload: %w", err)
	}

	if err := writer.WriteField("template_id", strconv.FormatInt(templateID, 10)); err != nil {
		return "", nil, err
	}

	if err := writer.Close(); err != nil {
		return "", nil, err
	}
	return writer.FormDataContentType(), &buf, nil
}
