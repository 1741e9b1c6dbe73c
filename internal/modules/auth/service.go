package auth

import (
	"context"
	"errors"

	"autohub/internal/domain"
	"autohub/internal/pkg/jwt"
	"autohub/internal/pkg/password"
	"autohub/internal/repository"
)

type Repository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Service struct {
	repo   Repository
	tokens *jwt.Service
}

func NewService(repo Repository, tokens *jwt.Service) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account and signs it in. An omitted role defaults to
// viewer; username and email uniqueness comes from the indexes.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	salt, err := password.NewSalt()
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: password.Hash(req.Password, salt),
		Salt:           salt,
		Role:           role,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserTaken
		}
		return nil, err
	}
	return s.session(u)
}

// Login verifies the credentials. A missing user and a wrong password are
// the same error; a disabled account is reported distinctly after the
// password check so probing stays uninformative.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(req.Password, u.Salt, u.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	return s.session(u)
}

// Me resolves the authenticated account by id.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) session(u *domain.User) (*SessionResponse, error) {
	token, err := s.tokens.GenerateToken(u.ID.Hex(), u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &SessionResponse{User: u, Token: token}, nil
}
