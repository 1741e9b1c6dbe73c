package heroslide

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub/internal/assetstore"
	"autohub/internal/pkg/form"
	"autohub/internal/pkg/response"
	"autohub/internal/pkg/validator"
	"autohub/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	g := rg.Group("/hero-slides")
	g.GET("/all-slides", h.ListAll)
	g.GET("/active-slides", h.ListActive)
	g.GET("/:id", h.GetByID)
	g.POST("/create", auth, admin, h.Create)
	g.PUT("/:id", auth, admin, h.Update)
	g.DELETE("/:id", auth, admin, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHeroSlideRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid slide payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid slide payload", fields)
		return
	}

	image, err := form.Upload(c, "image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid slide image upload", err)
		return
	}

	slide, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHeroSlideRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid slide payload", err)
		return
	}

	image, err := form.Upload(c, "image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid slide image upload", err)
		return
	}

	slide, err := h.service.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted successfully"})
}

func (h *Handler) GetByID(c *gin.Context) {
	slide, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handler) ListAll(c *gin.Context) {
	slides, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (h *Handler) ListActive(c *gin.Context) {
	slides, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrImageRequired),
		errors.Is(err, assetstore.ErrInvalidMimeType),
		errors.Is(err, assetstore.ErrFileTooLarge),
		errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid slide request", err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Slide not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
