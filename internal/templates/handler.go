package templates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/shared/server/middleware"
	"airesume-backend/internal/shared/server/respond"
)

const maxThumbnailSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc         *Service
	AdminEmails []string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, adminEmails []string) *Handler {
	return &Handler{Svc: svc, AdminEmails: adminEmails}
}

// RegisterRoutes attaches template routes to the router group. Reads are open
// to any signed-in user; writes require an admin email.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:index", h.getByIndex)
	rg.POST("/templates", h.requireAdmin, h.create)
	rg.POST("/templates/:id/thumbnail", h.requireAdmin, h.uploadThumbnail)
	rg.DELETE("/templates/:id", h.requireAdmin, h.remove)
}

func (h *Handler) requireAdmin(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	for _, admin := range h.AdminEmails {
		if admin == email {
			c.Next()
			return
		}
	}
	respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
}

func (h *Handler) list(c *gin.Context) {
	templates, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to list templates")
		return
	}
	respond.OK(c, gin.H{"templates": toResponses(templates)})
}

func (h *Handler) getByIndex(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "template index must be a number", nil)
		return
	}

	t, err := h.Svc.GetByIndex(c.Request.Context(), index)
	if err != nil {
		h.writeError(c, err, "failed to fetch template")
		return
	}
	respond.OK(c, toResponse(t))
}

type createRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	TemplateIndex int    `json:"templateIndex"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), req.Name, req.Description, req.Category, req.TemplateIndex)
	if err != nil {
		h.writeError(c, err, "failed to create template")
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(t))
}

func (h *Handler) uploadThumbnail(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxThumbnailSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	t, err := h.Svc.UploadThumbnail(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err, "failed to upload thumbnail")
		return
	}
	respond.OK(c, toResponse(t))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete template")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", "a template with this name or index already exists", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
