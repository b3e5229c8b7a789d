package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/skillgenie/skillgenie/internal/config"
	"github.com/skillgenie/skillgenie/internal/db"
	"github.com/skillgenie/skillgenie/internal/types"
)

// Claims represents JWT claims with the account ID.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService provides token generation and validation.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateToken signs a token for the given account ID.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

// AuthService handles registration, login and bearer-token enforcement.
type AuthService struct {
	db        *db.DB
	passwords *config.PasswordConfig
	tokens    *JWTService
}

// NewAuthService creates an AuthService over the given database.
func NewAuthService(database *db.DB, passwords *config.PasswordConfig, tokens *JWTService) *AuthService {
	return &AuthService{db: database, passwords: passwords, tokens: tokens}
}

// Register handles account creation requests.
func (a *AuthService) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeAuthError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := a.passwords.HashPassword(req.Password)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "failed to process password")
		return
	}

	user, err := a.db.CreateUser(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		writeAuthError(w, HTTPStatus(err), err.Error())
		return
	}

	a.writeLoginResponse(w, http.StatusCreated, user)
}

// Login handles login requests.
func (a *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeAuthError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, hash, err := a.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !a.passwords.VerifyPassword(req.Password, hash) {
		// One message for both unknown email and wrong password.
		writeAuthError(w, http.StatusUnauthorized, (&ErrInvalidCredentials{}).Error())
		return
	}

	a.writeLoginResponse(w, http.StatusOK, user)
}

// Middleware rejects requests without a valid bearer token.
func (a *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := a.tokens.ValidateToken(token); err != nil {
			writeAuthError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *AuthService) writeLoginResponse(w http.ResponseWriter, status int, user *types.User) {
	token, err := a.tokens.GenerateToken(user.ID)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	payload, err := json.Marshal(types.LoginResponse{User: user, Token: token})
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.Envelope{Success: true, Data: payload})
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.Envelope{Success: false, Message: message})
}
