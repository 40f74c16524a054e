package session

import "fmt"

// ValidationError is reported synchronously before any request is sent.
// The message is user-facing and localized.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrUnsupportedFileType = &ValidationError{"Desteklenmeyen dosya formatı. Lütfen PDF, DOCX veya TXT dosyası yükleyin."}
	ErrNoArtifact          = &ValidationError{"Lütfen önce bir CV dosyası yükleyin."}
	ErrAnalysisInFlight    = &ValidationError{"Devam eden bir analiz var. Lütfen tamamlanmasını bekleyin."}
)

// TransportError is a network failure or a non-2xx response from the
// analyze endpoint.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("analyze request failed with status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("analyze request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
