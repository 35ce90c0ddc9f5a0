package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/shared/server/middleware"
	"airesume-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume project routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.POST("/resumes/submit", h.submit)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:name", h.get)
	rg.DELETE("/resumes/:name", h.remove)
	rg.PATCH("/resumes/:name/template", h.changeTemplate)
	rg.PATCH("/resumes/:name/score", h.setScore)
}

type createRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) create(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), email, req.Name, req.Category)
	if err != nil {
		h.writeError(c, err, "failed to create resume")
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(p))
}

type submitRequest struct {
	Name               string         `json:"name"`
	Category           string         `json:"category"`
	SelectedTemplateID string         `json:"selectedTemplateId"`
	Final              map[string]any `json:"final"`
	Score              int            `json:"score"`
}

func (h *Handler) submit(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Submit(c.Request.Context(), Project{
		Email:              email,
		Name:               req.Name,
		Category:           req.Category,
		SelectedTemplateID: req.SelectedTemplateID,
		Final:              req.Final,
		Score:              req.Score,
	})
	if err != nil {
		h.writeError(c, err, "failed to save resume")
		return
	}
	respond.OK(c, toResponse(p))
}

func (h *Handler) list(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	projects, err := h.Svc.List(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}
	respond.OK(c, gin.H{"resumes": toResponses(projects)})
}

func (h *Handler) get(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	p, err := h.Svc.Get(c.Request.Context(), email, c.Param("name"))
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toResponse(p))
}

func (h *Handler) remove(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), email, c.Param("name")); err != nil {
		h.writeError(c, err, "failed to delete resume")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

type changeTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

func (h *Handler) changeTemplate(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req changeTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.ChangeTemplate(c.Request.Context(), email, c.Param("name"), req.TemplateID); err != nil {
		h.writeError(c, err, "failed to change template")
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

type setScoreRequest struct {
	Score int `json:"score"`
}

func (h *Handler) setScore(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req setScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.SetScore(c.Request.Context(), email, c.Param("name"), req.Score); err != nil {
		h.writeError(c, err, "failed to update score")
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", "a resume with this name already exists", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
