package importer

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
	g := rg.Group("/importers")
	g.GET("/all-importers", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("/create", auth, admin, h.Create)
	g.PUT("/:id", auth, admin, h.Update)
	g.DELETE("/:id", auth, admin, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateImporterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid importer payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid importer payload", fields)
		return
	}

	image, err := form.Upload(c, "profileImage")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid profile image upload", err)
		return
	}

	imp, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateImporterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid importer payload", err)
		return
	}

	image, err := form.Upload(c, "profileImage")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid profile image upload", err)
		return
	}

	imp, err := h.service.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, imp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Importer deleted successfully"})
}

func (h *Handler) GetByID(c *gin.Context) {
	imp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, imp)
}

func (h *Handler) List(c *gin.Context) {
	importers, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, importers)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBrandRequired),
		errors.Is(err, assetstore.ErrInvalidMimeType),
		errors.Is(err, assetstore.ErrFileTooLarge),
		errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid importer request", err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Importer not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
