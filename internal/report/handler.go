package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahadriazkiani/Reportsay/internal/pdfgen"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /reports/analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("report_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_file is required"})
		return
	}
	defer file.Close()

	language := c.PostForm("language")

	r, err := h.service.Analyze(
		c.Request.Context(),
		file,
		header.Filename,
		language,
	)
	if err != nil {
		// A bad upload is the caller's fault; anything else means the
		// model call failed.
		status := http.StatusBadGateway
		if errors.Is(err, ErrInvalidUpload) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report_id":  r.ID,
		"language":   r.Language,
		"analysis":   r.Analysis,
		"created_at": r.CreatedAt,
	})
}

// --------------------------------------------------
// GET /reports/:id/pdf
// --------------------------------------------------
func (h *Handler) ExportPDF(c *gin.Context) {
	id := c.Param("id")

	r, err := h.service.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	data, err := pdfgen.Render("ReportSay - AI Analysis Report", r.Analysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ReportSay_Analysis.pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
