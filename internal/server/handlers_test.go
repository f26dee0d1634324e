package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine"
	"github.com/crimson-sun/stanza/internal/engine/classifier"
	"github.com/crimson-sun/stanza/internal/model"
	"github.com/crimson-sun/stanza/internal/trainer"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	ds := dataset.Generate(360, 42)
	for _, task := range model.Tasks {
		pipe, err := classifier.New(task)
		require.NoError(t, err)
		require.NoError(t, pipe.Fit(trainer.BuildTexts(ds), ds.Labels(task)))
		require.NoError(t, pipe.Save(classifier.ArtifactPath(dir, task)))
	}

	eng, err := engine.Load(dir)
	require.NoError(t, err)
	return New(":0", eng)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestIndexServesPage(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Batch")
}

func TestPredictOne(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"Eccellente soggiorno!","body":"colazione ricca e varia"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var pred model.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pred))
	assert.Equal(t, "F&B", pred.Department)
	assert.Equal(t, "positive", pred.Sentiment)
	assert.NotEmpty(t, pred.ID)
	assert.False(t, pred.Timestamp.IsZero())
}

func TestPredictOneBadJSON(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadCSV(t *testing.T, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "reviews.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestPredictBatchCSVDownload(t *testing.T) {
	srv := newTestServer(t)

	csv := "id,title,body\n1,Eccellente soggiorno!,colazione ricca e varia\n2,,camera sporca\n"
	body, contentType := uploadCSV(t, csv)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/batch", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "predictions_batch_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "predicted_department")
	assert.Contains(t, lines[0], "predicted_sentiment")
	assert.Contains(t, lines[0], "timestamp")
	assert.Contains(t, lines[1], "F&B")
	assert.Contains(t, lines[1], "positive")
	assert.Contains(t, lines[2], "Housekeeping")
	assert.Contains(t, lines[2], "negative")
}

func TestPredictBatchJSONPreview(t *testing.T) {
	srv := newTestServer(t)

	var sb strings.Builder
	sb.WriteString("title,body\n")
	for i := 0; i < 30; i++ {
		sb.WriteString("Ottimo,camera pulita e profumata\n")
	}
	body, contentType := uploadCSV(t, sb.String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/batch?format=json", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Header []string   `json:"header"`
		Rows   [][]string `json:"rows"`
		Total  int        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.Total)
	assert.Len(t, resp.Rows, 20, "preview is capped")
	assert.Contains(t, resp.Header, "predicted_department")
}

func TestPredictBatchMissingColumns(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := uploadCSV(t, "id,text\n1,hello\n")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/batch", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestPredictBatchNoFile(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/batch", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
