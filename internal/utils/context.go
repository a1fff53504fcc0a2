package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey      ContextKey = "claims"
	CountryIDKey   ContextKey = "country_id"
	CountrySlugKey ContextKey = "country_slug"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrInvalidClaimsType   = errors.New("invalid claims type")
	ErrNoCountryIDInClaims = errors.New("no country_id found in claims")
)

// CountryClaims is the session token issued after a successful country login.
type CountryClaims struct {
	CountryID   string `json:"country_id"`
	CountrySlug string `json:"country_slug"`
	jwt.RegisteredClaims
}

func GetClaimsFromContext(c context.Context) (*CountryClaims, error) {
	value := c.Value(ClaimsKey)
	if value == nil {
		return nil, ErrNoClaimsInContext
	}

	claims, ok := value.(*CountryClaims)
	if !ok {
		return nil, ErrInvalidClaimsType
	}
	return claims, nil
}

func GetCountryIDFromContext(c context.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	if claims.CountryID == "" {
		return "", ErrNoCountryIDInClaims
	}
	return claims.CountryID, nil
}
