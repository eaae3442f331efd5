package services

import (
	"context"
	"net/http"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/auth"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewUserService(users repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateEmail, "Email already registered", http.StatusConflict, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}

	return s.issueToken(user)
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := auth.GenerateJWT(user.ID.Hex(), user.Name, user.Email, s.jwtSecret)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized, nil)
}
