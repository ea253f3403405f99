package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-keycore/models"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for a
// header that is not "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
//
// Example usage:
//
//	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseAccessTokenClaims decodes the claims of an identity server access
// token. The signature is not verified: the token was issued to this agent
// and the server checks it on every request it is attached to.
//
// Returns an error if the token is malformed or has no subject.
func ParseAccessTokenClaims(tokenString string) (*models.AccessTokenClaims, error) {
	claims := &models.AccessTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), claims); err != nil {
		return nil, fmt.Errorf("error parsing access token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}
	return claims, nil
}
