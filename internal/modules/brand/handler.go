package brand

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

// RegisterRoutes wires brand endpoints. Reads are public, mutations are
// admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	g := rg.Group("/brands")
	g.GET("", h.ListActive)
	g.GET("/all-brands", h.ListAll)
	g.GET("/:id", h.GetByID)
	g.POST("/create", auth, admin, h.Create)
	g.PUT("/:id", auth, admin, h.Update)
	g.DELETE("/:id", auth, admin, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid brand payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid brand payload", fields)
		return
	}

	logo, err := form.Upload(c, "logo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid logo upload", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, logo)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBrandRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid brand payload", err)
		return
	}

	logo, err := form.Upload(c, "logo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid logo upload", err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req, logo)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) ListActive(c *gin.Context) {
	brands, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *Handler) ListAll(c *gin.Context) {
	brands, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLogoRequired),
		errors.Is(err, ErrNameTaken),
		errors.Is(err, assetstore.ErrInvalidMimeType),
		errors.Is(err, assetstore.ErrFileTooLarge),
		errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid brand request", err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Brand not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
