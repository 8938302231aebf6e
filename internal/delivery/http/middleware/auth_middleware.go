package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"rdv-booking/pkg/jwt"
	"rdv-booking/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	PatientIDKey    contextKey = "patient_id"
	PatientEmailKey contextKey = "patient_email"
	TokenIDKey      contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate establishes the acting patient identity for all guarded
// routes. The identity travels in the request context and is handed to the
// usecases as an explicit parameter, never read back from global state.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("access_token:%d:%s", claims.PatientID, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), PatientIDKey, claims.PatientID)
		ctx = context.WithValue(ctx, PatientEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPatientIDFromContext extracts the acting patient id from context
func GetPatientIDFromContext(ctx context.Context) (int, bool) {
	patientID, ok := ctx.Value(PatientIDKey).(int)
	return patientID, ok
}

// GetPatientEmailFromContext extracts the acting patient email from context
func GetPatientEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PatientEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts the token id from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
