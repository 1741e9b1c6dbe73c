package car

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
	g := rg.Group("/cars")
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/:id", h.GetByID)
	g.GET("/:id/similar", h.Similar)
	g.POST("/create", auth, admin, h.Create)
	g.PUT("/:id", auth, admin, h.Update)
	g.DELETE("/:id", auth, admin, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid car payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid car payload", fields)
		return
	}

	photos, err := form.Uploads(c, "photos", maxPhotos)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid photos upload", err)
		return
	}

	car, err := h.service.Create(c.Request.Context(), req, photos)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCarRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid car payload", err)
		return
	}

	// existingPhotos is the retain-list; only its presence switches the
	// update into photo-reconcile mode.
	if existing, ok := c.GetPostFormArray("existingPhotos"); ok {
		req.ExistingPhotos = existing
		req.ReplacePhotos = true
	}

	photos, err := form.Uploads(c, "photos", maxPhotos)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid photos upload", err)
		return
	}

	car, err := h.service.Update(c.Request.Context(), c.Param("id"), req, photos)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}

func (h *Handler) GetByID(c *gin.Context) {
	car, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) List(c *gin.Context) {
	cars, err := h.service.List(c.Request.Context(), c.Query("brand"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid search query", err)
		return
	}
	cars, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *Handler) Similar(c *gin.Context) {
	cars, err := h.service.Similar(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPhotosRequired),
		errors.Is(err, ErrTooManyPhotos),
		errors.Is(err, ErrBrandRequired),
		errors.Is(err, ErrImporterRequired),
		errors.Is(err, ErrInvalidBodyType),
		errors.Is(err, assetstore.ErrInvalidMimeType),
		errors.Is(err, assetstore.ErrFileTooLarge),
		errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid car request", err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Car not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
