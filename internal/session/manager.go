package session

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"emretopal/cv-analiz/internal/models"
	"emretopal/cv-analiz/internal/services"
)

// Manager owns the single active artifact of the session. Selecting a
// valid file replaces the artifact wholesale; an invalid selection leaves
// the prior artifact untouched. At most one artifact is active at a time.
type Manager struct {
	storage services.StorageService

	mu     sync.Mutex
	active *models.Artifact
}

func NewManager(storage services.StorageService) *Manager {
	return &Manager{storage: storage}
}

// Select validates and activates an uploaded file. A disallowed extension
// is rejected with the localized validation error and no state change.
func (m *Manager) Select(filename string, content io.Reader) (*models.Artifact, error) {
	if !models.IsAllowedExtension(filename) {
		return nil, ErrUnsupportedFileType
	}

	_, path, err := m.storage.SaveUpload(filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	artifact := &models.Artifact{
		ID:         uuid.New(),
		Name:       filename,
		Extension:  models.ExtensionOf(filename),
		FilePath:   path,
		UploadedAt: time.Now(),
	}

	m.mu.Lock()
	prior := m.active
	m.active = artifact
	m.mu.Unlock()

	// Replace is wholesale: the old file only goes away once the new
	// one is in place.
	if prior != nil {
		if err := m.storage.DeleteFile(filepath.Base(prior.FilePath)); err != nil {
			log.Printf("⚠️  Failed to delete replaced artifact %s: %v\n", prior.Name, err)
		}
	}

	return artifact, nil
}

// Remove clears the active artifact and its stored file, returning the
// session to the initial no-file state. Removing with no artifact is a
// no-op.
func (m *Manager) Remove() error {
	m.mu.Lock()
	prior := m.active
	m.active = nil
	m.mu.Unlock()

	if prior == nil {
		return nil
	}
	if err := m.storage.DeleteFile(filepath.Base(prior.FilePath)); err != nil {
		return fmt.Errorf("failed to delete artifact file: %w", err)
	}
	return nil
}

// Active returns a copy of the current artifact, or nil when no file has
// been selected.
func (m *Manager) Active() *models.Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return nil
	}
	copy := *m.active
	return &copy
}
