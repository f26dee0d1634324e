package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine"
)

//go:embed index.html
var indexHTML []byte

const previewRows = 20

type handler struct {
	eng *engine.Engine
}

type predictRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// predictOne classifies a single review from a JSON body. Empty title and
// body are accepted and still produce a label pair.
func (h *handler) predictOne(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pred, err := h.eng.PredictOne(req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	pred.ID = uuid.NewString()
	c.JSON(http.StatusOK, pred)
}

// predictBatch classifies an uploaded CSV or XLSX file. The default response
// is the enriched CSV as a download; ?format=json returns a short preview
// for the UI table instead.
func (h *handler) predictBatch(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload: " + err.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	table, err := dataset.ReadTableFrom(f, filepath.Ext(fh.Filename))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.eng.PredictBatch(table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.Query("format") == "json" {
		rows := table.Rows
		if len(rows) > previewRows {
			rows = rows[:previewRows]
		}
		c.JSON(http.StatusOK, gin.H{
			"header": table.Header,
			"rows":   rows,
			"total":  len(table.Rows),
		})
		return
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	name := fmt.Sprintf("predictions_batch_%s.csv", time.Now().Format("2006-01-02_15-04-05"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
