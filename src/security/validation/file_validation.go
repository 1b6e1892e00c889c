package validation

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/username/sellerprofit/src/logger"
)

// SourceKind tells the validators whether a workbook is acceptable for an upload.
type SourceKind int

const (
	// KindText accepts delimited or line-oriented text only.
	KindText SourceKind = iota
	// KindTable also accepts .xlsx workbooks.
	KindTable
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AllowedClientContentTypes maps client-declared MIME types to whether they are accepted for text uploads.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                  true,
	"application/csv":           true,
	"application/vnd.ms-excel":  true, // Often used for CSV by older Excel
	"text/plain":                true,
	"text/tab-separated-values": true,
	"application/octet-stream":  true, // Fallback, strict parsing follows
	xlsxContentType:             false,
}

// ValidateClientContentType checks the Content-Type header provided by the client.
// An absent header is treated as application/octet-stream.
func ValidateClientContentType(contentType string, kind SourceKind) error {
	mediaType := "application/octet-stream"
	if strings.TrimSpace(contentType) != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			logger.L.Warn("Unparseable client-declared Content-Type", "contentType", contentType, "error", err)
			return fmt.Errorf("client-declared file type '%s' is not valid", contentType)
		}
		mediaType = strings.ToLower(parsed)
	}

	if mediaType == xlsxContentType && kind == KindTable {
		return nil
	}
	if allowed, exists := AllowedClientContentTypes[mediaType]; !exists || !allowed {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type '%s' is not allowed for this upload", contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes checks the actual file content signature (magic bytes).
// It returns the detected content type and an error if validation fails. The read
// pointer is reset so the parser sees the whole file.
func ValidateFileContentByMagicBytes(file io.ReadSeeker, kind SourceKind) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	detectedContentType := http.DetectContentType(buffer[:n])
	detectedContentType = strings.ToLower(strings.Split(detectedContentType, ";")[0])

	allowedDetectedTypes := map[string]bool{
		"text/plain":               true,
		"text/csv":                 true,
		"application/csv":          true,
		"application/octet-stream": true,
		"application/zip":          kind == KindTable, // .xlsx is a zip container
	}

	if !allowedDetectedTypes[detectedContentType] {
		logger.L.Warn("Disallowed detected file content type (magic bytes)", "detectedContentType", detectedContentType)
		return detectedContentType, fmt.Errorf("detected file content type '%s' is not consistent with an accepted source file", detectedContentType)
	}

	logger.L.Debug("File content type (magic bytes) validated", "detectedContentType", detectedContentType)
	return detectedContentType, nil
}
