package services

import (
	"context"
	"strings"
	"time"

	problem "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/problem"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// temporaryPassword is het wachtwoord waarnaar forgot-password terugzet.
const temporaryPassword = "temporary"

type AuthAPIService struct {
	repo      repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthAPIService(repo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthAPIService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthAPIService{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *AuthAPIService) Register(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, problem.NewBadRequest("body", "Username and password are required")
	}
	if len(password) < 8 {
		return nil, problem.NewBadRequest("password", "Password must be at least 8 characters long")
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, problem.NewBadRequest("username", "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Id:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthAPIService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, problem.NewUnauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, problem.NewUnauthorized("Invalid username or password")
	}
	return s.issueToken(user)
}

// ForgotPassword zet het wachtwoord terug naar een tijdelijke waarde; er is
// geen mailkanaal in dit systeem.
func (s *AuthAPIService) ForgotPassword(ctx context.Context, username string) (*models.PasswordResetResponse, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, problem.NewNotFound(username, "Username not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return nil, err
	}

	return &models.PasswordResetResponse{
		Message: "Password has been reset to: " + temporaryPassword,
	}, nil
}

func (s *AuthAPIService) issueToken(user *models.User) (*models.TokenResponse, error) {
	expires := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":      user.Id,
		"username": user.Username,
		"admin":    user.IsAdmin,
		"exp":      expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{Token: token, ExpiresAt: expires}, nil
}
