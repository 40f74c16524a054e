package session

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emretopal/cv-analiz/internal/services"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())
	return NewManager(storage)
}

func TestManagerSelect(t *testing.T) {
	m := newTestManager(t)

	artifact, err := m.Select("cv.txt", strings.NewReader("deneyimli geliştirici"))
	require.NoError(t, err)
	assert.Equal(t, "cv.txt", artifact.Name)
	assert.Equal(t, ".txt", artifact.Extension)
	assert.FileExists(t, artifact.FilePath)

	active := m.Active()
	require.NotNil(t, active)
	assert.Equal(t, artifact.ID, active.ID)
}

func TestManagerSelectRejectsUnsupportedType(t *testing.T) {
	m := newTestManager(t)

	prior, err := m.Select("cv.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	_, err = m.Select("malware.exe", strings.NewReader("MZ"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	// rejection leaves the prior artifact in place
	active := m.Active()
	require.NotNil(t, active)
	assert.Equal(t, prior.ID, active.ID)
	assert.FileExists(t, prior.FilePath)
}

func TestManagerSelectReplacesWholesale(t *testing.T) {
	m := newTestManager(t)

	first, err := m.Select("old.txt", strings.NewReader("eski"))
	require.NoError(t, err)

	second, err := m.Select("new.txt", strings.NewReader("yeni"))
	require.NoError(t, err)

	active := m.Active()
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	// the replaced file is cleaned up
	_, statErr := os.Stat(first.FilePath)
	assert.True(t, os.IsNotExist(statErr))
	assert.FileExists(t, second.FilePath)
}

func TestManagerRemove(t *testing.T) {
	m := newTestManager(t)

	artifact, err := m.Select("cv.txt", strings.NewReader("içerik"))
	require.NoError(t, err)

	require.NoError(t, m.Remove())
	assert.Nil(t, m.Active())

	_, statErr := os.Stat(artifact.FilePath)
	assert.True(t, os.IsNotExist(statErr))

	// removing again is a no-op
	assert.NoError(t, m.Remove())
}

func TestManagerActiveReturnsCopy(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Select("cv.txt", strings.NewReader("içerik"))
	require.NoError(t, err)

	a := m.Active()
	a.Name = "mutated.txt"

	assert.Equal(t, "cv.txt", m.Active().Name)
}
