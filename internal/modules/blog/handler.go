package blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub/internal/assetstore"
	"autohub/internal/middleware"
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

// RegisterRoutes wires blog endpoints. Only the published listing and the
// slug permalink are public; the full listing and id lookup can see drafts,
// so they require a session. Updates and deletes are further restricted to
// the author or an admin inside the service.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/blogs")
	g.GET("/all", auth, h.List)
	g.GET("/published", h.ListPublished)
	g.GET("/post/:slug", h.GetBySlug)
	g.GET("/:id", auth, h.GetByID)
	g.POST("/create", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetString(middleware.CtxUserID),
		Role:   c.GetString(middleware.CtxRole),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid blog payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid blog payload", fields)
		return
	}

	image, err := form.Upload(c, "featuredImage")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid featured image upload", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorFrom(c), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid blog payload", err)
		return
	}

	image, err := form.Upload(c, "featuredImage")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid featured image upload", err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), actorFrom(c), req, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing query", err)
		return
	}
	blogs, pagination, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "pagination": pagination})
}

func (h *Handler) ListPublished(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing query", err)
		return
	}
	blogs, pagination, err := h.service.ListPublished(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "pagination": pagination})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSlugTaken),
		errors.Is(err, ErrBadAuthorID),
		errors.Is(err, assetstore.ErrInvalidMimeType),
		errors.Is(err, assetstore.ErrFileTooLarge),
		errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "Invalid blog request", err)
	case errors.Is(err, ErrNotAllowed):
		response.Error(c, http.StatusForbidden, "Not allowed", err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Blog not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
