package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kora-backend/internal/database/models"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// RefreshTokenData stores the session behind one refresh token
type RefreshTokenData struct {
	CoachID   uuid.UUID `json:"coach_id"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	oauthClients  map[string]*OAuthClient
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex
	coachRepo     repository.CoachRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	CoachID  uuid.UUID `json:"coach_id"`
	Email    string    `json:"email"`
	Provider string    `json:"provider"`
	jwt.RegisteredClaims
}

// RegisterRequest creates a local coach account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

// LoginRequest authenticates a local coach account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CoachProfile is the account summary returned with every token response
type CoachProfile struct {
	ID        uuid.UUID               `json:"id"`
	Email     string                  `json:"email"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Tier      models.SubscriptionTier `json:"tier"`
	Provider  models.AuthProvider     `json:"provider"`
}

// TokenResponse is returned from register, login, OAuth callback and refresh
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	Profile      CoachProfile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, coachRepo repository.CoachRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	oauthClients := make(map[string]*OAuthClient)
	for providerName := range config.Providers {
		providerConfig := config.Providers[providerName]
		oauthClients[providerName] = NewOAuthClient(providerName, &providerConfig)
	}

	return &AuthService{
		config:        config,
		oauthClients:  oauthClients,
		refreshTokens: make(map[string]*RefreshTokenData),
		coachRepo:     coachRepo,
	}, nil
}

// Register creates a local coach account with a bcrypt password hash
func (s *AuthService) Register(req *RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.coachRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrCoachExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing coach: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	coach := &models.Coach{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Provider:     models.ProviderLocal,
		Tier:         models.TierFree,
	}
	if err := s.coachRepo.Create(coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	return s.issueTokens(coach, string(models.ProviderLocal))
}

// Login authenticates a local coach account
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	coach, err := s.coachRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up coach: %w", err)
	}

	// OAuth-only accounts have no password hash
	if coach.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	coach.LastLoginAt = &now
	if err := s.coachRepo.Update(coach); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return s.issueTokens(coach, string(models.ProviderLocal))
}

// GetAuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	if _, err := s.config.GetProvider(provider); err != nil {
		return "", err
	}

	oauthClient, exists := s.oauthClients[provider]
	if !exists {
		return "", fmt.Errorf("OAuth client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/v1/auth/%s/callback", s.config.RedirectURL, provider)
	return oauthClient.GetOAuth2Config(callbackURL).AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, fetches the profile and
// finds or creates the matching coach account.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*TokenResponse, error) {
	if _, err := s.config.GetProvider(provider); err != nil {
		return nil, err
	}

	oauthClient, exists := s.oauthClients[provider]
	if !exists {
		return nil, fmt.Errorf("OAuth client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/v1/auth/%s/callback", s.config.RedirectURL, provider)
	token, err := oauthClient.GetOAuth2Config(callbackURL).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := oauthClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	coach, err := s.findOrCreateCoach(profile, provider)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(coach, provider)
}

func (s *AuthService) findOrCreateCoach(profile *OAuthProfile, provider string) (*models.Coach, error) {
	email := strings.ToLower(profile.Email)

	coach, err := s.coachRepo.GetByEmail(email)
	if err == nil {
		now := time.Now()
		coach.LastLoginAt = &now
		if err := s.coachRepo.Update(coach); err != nil {
			return nil, fmt.Errorf("failed to record login: %w", err)
		}
		return coach, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up coach: %w", err)
	}

	firstName := profile.GivenName
	lastName := profile.Surname
	if firstName == "" && lastName == "" {
		// Fall back to splitting the display name
		parts := strings.SplitN(profile.Name, " ", 2)
		firstName = parts[0]
		if len(parts) > 1 {
			lastName = parts[1]
		}
	}
	if firstName == "" {
		firstName = email
	}
	if lastName == "" {
		lastName = "-"
	}

	coach = &models.Coach{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Provider:  models.AuthProvider(provider),
		Tier:      models.TierFree,
	}
	if err := s.coachRepo.Create(coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	return coach, nil
}

// RefreshToken rotates a refresh token and issues a new JWT
func (s *AuthService) RefreshToken(refreshToken string) (*TokenResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	coach, err := s.coachRepo.GetByID(tokenData.CoachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to look up coach: %w", err)
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.issueTokens(coach, tokenData.Provider)
}

// Logout invalidates a refresh token. The JWT itself stays valid until
// expiry; clients drop it.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// GenerateJWT creates a JWT token for the coach
func (s *AuthService) GenerateJWT(coach *models.Coach, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		CoachID:  coach.ID,
		Email:    coach.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kora-backend",
			Subject:   coach.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

func (s *AuthService) issueTokens(coach *models.Coach, provider string) (*TokenResponse, error) {
	jwtToken, err := s.GenerateJWT(coach, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		CoachID:   coach.ID,
		Email:     coach.Email,
		Provider:  provider,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile: CoachProfile{
			ID:        coach.ID,
			Email:     coach.Email,
			FirstName: coach.FirstName,
			LastName:  coach.LastName,
			Tier:      coach.Tier,
			Provider:  coach.Provider,
		},
	}, nil
}

func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
