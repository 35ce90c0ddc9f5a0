package analyses

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/extract"
	"airesume-backend/internal/shared/server/middleware"
	"airesume-backend/internal/shared/server/respond"
	"airesume-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/analyze", h.analyze)
	rg.POST("/ai/enhance", h.enhance)
	rg.GET("/ai/history", h.history)
	rg.DELETE("/ai/history", h.deleteRun)
}

// analyze accepts either a multipart upload (field "file") or a plain "text"
// form field, together with "jobRole" and an optional "resumeName".
func (h *Handler) analyze(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	jobRole := c.PostForm("jobRole")
	resumeName := c.PostForm("resumeName")
	resumeText := c.PostForm("text")

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}

		text, err := extract.Text(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to extract text from file", nil)
			return
		}
		resumeText = text
		if resumeName == "" {
			resumeName = util.BaseName(fileHeader.Filename)
		}
	}

	run, err := h.Svc.Analyze(c.Request.Context(), email, resumeName, jobRole, resumeText)
	if err != nil {
		h.writeError(c, err, "failed to analyze resume")
		return
	}
	respond.OK(c, toResponse(run))
}

type enhanceRequest struct {
	Text string `json:"text"`
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	enhanced, err := h.Svc.Enhance(c.Request.Context(), req.Text)
	if err != nil {
		h.writeError(c, err, "failed to enhance text")
		return
	}
	respond.OK(c, gin.H{"enhanced": enhanced})
}

func (h *Handler) history(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	runs, err := h.Svc.History(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err, "failed to list analysis history")
		return
	}
	respond.OK(c, gin.H{"history": toResponses(runs)})
}

type deleteRunRequest struct {
	ResumeName string    `json:"resumeName"`
	JobRole    string    `json:"jobRole"`
	Date       time.Time `json:"date"`
}

func (h *Handler) deleteRun(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req deleteRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.DeleteRun(c.Request.Context(), email, req.ResumeName, req.JobRole, req.Date); err != nil {
		h.writeError(c, err, "failed to delete analysis run")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis run not found", nil)
	case errors.Is(err, ErrAnalysisFailed):
		respond.Error(c, http.StatusBadGateway, "analysis_failed", "the analysis service could not process the resume", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
