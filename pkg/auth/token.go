package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

var ErrUnauthenticated = errors.New("authentication credentials were not provided or are invalid")

// Claims carried by access tokens. Subject is the user's UUID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

func NewTokens(conf configs.Auth) *Tokens {
	return &Tokens{
		secret:   []byte(conf.SecretKey),
		issuer:   conf.Issuer,
		lifetime: conf.TokenLifetime,
	}
}

// Issue signs an HS256 access token for user.
func (t *Tokens) Issue(user *model.User) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   user.UUID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse validates the signature, expiry and issuer of accessToken.
func (t *Tokens) Parse(accessToken string) (*Claims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return t.secret, nil
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if !token.Valid || !claims.VerifyIssuer(t.issuer, true) {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	return claims, nil
}

func (c *Claims) UserUUID() (uuid.UUID, error) {
	userUUID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", ErrUnauthenticated)
	}

	return userUUID, nil
}
