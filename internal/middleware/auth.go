package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/utils"
)

const tokenIssuer = "country-gallery-api"

type AuthMiddleware struct {
	config *config.Config
	now    func() time.Time
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
		now:    time.Now,
	}
}

// JWTAuth requires a country session token. Browsers cannot set headers on a
// websocket handshake, so the token may also arrive as the access_token query
// parameter.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := m.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Set(string(utils.CountryIDKey), claims.CountryID)
		c.Set(string(utils.CountrySlugKey), claims.CountrySlug)
		c.Next()
	}
}

// GenerateToken signs a session token scoped to one country.
func (m *AuthMiddleware) GenerateToken(countryID, countrySlug string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.config.TokenTTL())

	claims := utils.CountryClaims{
		CountryID:   countryID,
		CountrySlug: countrySlug,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   countryID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *AuthMiddleware) ParseToken(token string) (*utils.CountryClaims, error) {
	claims := &utils.CountryClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return []byte(m.config.JWT.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.CountryID == "" {
		return nil, utils.ErrNoCountryIDInClaims
	}
	return claims, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query("access_token")
		return token, token != ""
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}
