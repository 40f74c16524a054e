package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emretopal/cv-analiz/internal/render"
	"emretopal/cv-analiz/internal/services"
	"emretopal/cv-analiz/internal/session"
)

// newTestApp wires the session routes against a stub analyze backend.
func newTestApp(t *testing.T, backend http.HandlerFunc) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())
	manager := session.NewManager(storage)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	client := session.NewAnalyzeClient(server.URL, 5*time.Second)
	controller := session.NewController(manager, client, renderer, "llama3:8b", time.Millisecond)

	uploadHandler := NewUploadHandler(manager, controller, 1<<20)
	sessionHandler := NewSessionHandler(controller)
	systemHandler := NewSystemHandler(services.NewSystemInfoService())

	app := fiber.New()
	app.Get("/api/system-info", systemHandler.HandleSystemInfo)
	app.Get("/api/settings/labels", systemHandler.HandleSettingsLabels)

	sess := app.Group("/api/session")
	sess.Post("/file", uploadHandler.HandleSelect)
	sess.Get("/file", uploadHandler.HandleGet)
	sess.Delete("/file", uploadHandler.HandleRemove)
	sess.Post("/analyze", sessionHandler.HandleAnalyze)
	sess.Get("/progress", sessionHandler.HandleProgress)
	sess.Get("/result", sessionHandler.HandleResult)

	return app
}

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestUploadSelectAndGet(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	body, contentType := multipartFile(t, "cv.txt", "Deneyimli geliştirici")
	req := httptest.NewRequest(http.MethodPost, "/api/session/file", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	got := decodeBody(t, resp)
	artifact, ok := got["artifact"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cv.txt", artifact["name"])
	assert.Equal(t, ".txt", artifact["extension"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/session/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadSelectRejectsUnsupportedType(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	body, contentType := multipartFile(t, "cv.exe", "MZ")
	req := httptest.NewRequest(http.MethodPost, "/api/session/file", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Contains(t, got["error"], "Desteklenmeyen dosya formatı")
}

func TestUploadSelectWithoutFile(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/session/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRemove(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	body, contentType := multipartFile(t, "cv.txt", "içerik")
	req := httptest.NewRequest(http.MethodPost, "/api/session/file", body)
	req.Header.Set("Content-Type", contentType)
	_, err := app.Test(req)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/session/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/session/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSessionAnalyzeWithoutArtifact(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/session/analyze", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Contains(t, got["error"], "önce bir CV dosyası")
}

func TestSessionAnalyzeLifecycle(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ozet": "Kıdemli backend geliştirici."}`))
	})

	body, contentType := multipartFile(t, "cv.txt", "Deneyimli Go geliştiricisi")
	req := httptest.NewRequest(http.MethodPost, "/api/session/file", body)
	req.Header.Set("Content-Type", contentType)
	_, err := app.Test(req)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/session/analyze", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	require.Eventually(t, func() bool {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/progress", nil))
		if err != nil {
			return false
		}
		return decodeBody(t, resp)["phase"] == "completed"
	}, 3*time.Second, 10*time.Millisecond)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/session/result", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody(t, resp)
	canonical, ok := got["canonical"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "llm", canonical["kind"])
	assert.Equal(t, "Kıdemli backend geliştirici.", canonical["summary"])
}

func TestSessionResultBeforeAnyRun(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session/result", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSystemInfoEndpoint(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/system-info", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody(t, resp)
	info, ok := got["system_info"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, info["system"])
	assert.Contains(t, info, "python_version")
	assert.Contains(t, info, "memory")
}

func TestSettingsLabelsEndpoint(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/settings/labels?memory_gb=12&model=llama3:8b+(Dengeli)", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, "12 GB", got["memory_label"])
	assert.Equal(t, "llama3:8b", got["model_label"])
}
