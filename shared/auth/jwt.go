package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies which kind of domain record a principal owns.
type Role string

const (
	RoleCollege   Role = "college"
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Principal is the authenticated actor making a request. It maps 1:1 to
// exactly one domain owner record, resolved per request by the owner resolver.
type Principal struct {
	UserID string
	Role   Role
}

// PrincipalClaims are the JWT claims issued by the auth service for a user.
type PrincipalClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthenticator validates the access tokens issued by the auth service.
type JWTAuthenticator struct {
	audience string
	issuer   string
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(audience, issuer string) JWTAuthenticator {
	return JWTAuthenticator{
		audience: audience,
		issuer:   issuer,
	}
}

// GenerateToken signs a token with the given claims and secret.
func (a *JWTAuthenticator) GenerateToken(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// ValidatePrincipalToken validates an access token and returns the principal it
// identifies.
func (a *JWTAuthenticator) ValidatePrincipalToken(tokenString, secret string) (*Principal, error) {
	claims := &PrincipalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	role := Role(claims.Role)
	switch role {
	case RoleCollege, RoleStudent, RoleRecruiter:
	default:
		return nil, fmt.Errorf("unknown role claim: %q", claims.Role)
	}

	return &Principal{
		UserID: claims.UserID,
		Role:   role,
	}, nil
}
