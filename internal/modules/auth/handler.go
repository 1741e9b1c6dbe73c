package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub/internal/middleware"
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

// RegisterRoutes wires auth endpoints. Registration is admin-only; the seed
// binary bootstraps the first admin account.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.Login)
	g.POST("/register", auth, admin, h.Register)
	g.GET("/me", auth, h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid registration payload", fields)
		return
	}

	session, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, "Invalid login payload", fields)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserTaken), errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "Invalid registration", err)
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ErrAccountDisabled):
		response.Error(c, http.StatusForbidden, "Account disabled", err)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrInvalidID):
		response.Error(c, http.StatusNotFound, "User not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Server Error", err)
	}
}
