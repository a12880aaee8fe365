package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"
	"alumni-directory-backend/pkg/auth"
	"alumni-directory-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthConfig selects how bearer tokens are verified.
// HS256 tokens need Secret; RS256 tokens need a JWKS provider.
type AuthConfig struct {
	Secret string
	JWKS   *auth.Provider
}

func (a AuthConfig) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if a.Secret == "" {
			return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
		}
		return []byte(a.Secret), nil
	case *jwt.SigningMethodRSA:
		if a.JWKS == nil {
			return nil, fmt.Errorf("RS256 token received but JWKS_URL is not configured")
		}
		return a.JWKS.KeyFunc(token)
	}
	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
}

// AuthMiddleware verifies the bearer token and resolves it to a local user,
// provisioning the account on first sign-in. Role comes from the database,
// never from token claims.
func AuthMiddleware(cfg AuthConfig, accountUC domain.AccountUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", apperror.KindUnauthorized)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, cfg.keyFunc, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			logger.L().Debug("token validation failed", zap.Error(err))
			response.Error(c, http.StatusUnauthorized, "Invalid token", apperror.KindUnauthorized)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", apperror.KindUnauthorized)
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		user, err := accountUC.EnsureUser(c.Request.Context(), domain.Identity{Subject: sub, Email: email})
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
				response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			} else {
				logger.L().Error("sign-in provisioning failed", zap.String("sub", sub), zap.Error(err))
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", apperror.KindInternal)
			}
			c.Abort()
			return
		}

		role := string(user.Role)
		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", apperror.KindForbidden)
		c.Abort()
	}
}
