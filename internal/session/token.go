package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenIssuer = "persona-quiz"
	TokenTTL    = 24 * time.Hour
	minKeyLen   = 32
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the part of a quiz run the server hands back to the client as a
// signed token. A token carrying a higher interaction count than the client
// claims wins; a request without a token falls back to the claimed count.
type Claims struct {
	ID               uuid.UUID
	ThemeID          string
	InteractionCount int
}

type tokenClaims struct {
	ThemeID          string `json:"themeId"`
	InteractionCount int    `json:"interactionCount"`
	jwt.RegisteredClaims
}

// Tokens issues and reads session tokens. A nil *Tokens is valid and
// disables the feature: Issue returns "" and Read reports no claims.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string) (*Tokens, error) {
	if secret == "" {
		return nil, nil
	}
	if len(secret) < minKeyLen {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minKeyLen)
	}
	return &Tokens{secret: []byte(secret), ttl: TokenTTL}, nil
}

func (t *Tokens) Enabled() bool {
	return t != nil && len(t.secret) > 0
}

func (t *Tokens) Issue(c Claims) (string, error) {
	if !t.Enabled() {
		return "", nil
	}
	now := time.Now()
	claims := tokenClaims{
		ThemeID:          c.ThemeID,
		InteractionCount: c.InteractionCount,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        c.ID.String(),
			Issuer:    TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Read verifies token. It returns ok=false when tokens are disabled or the
// token is empty.
func (t *Tokens) Read(token string) (Claims, bool, error) {
	if !t.Enabled() || token == "" {
		return Claims{}, false, nil
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, false, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return Claims{}, false, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return Claims{
		ID:               id,
		ThemeID:          claims.ThemeID,
		InteractionCount: claims.InteractionCount,
	}, true, nil
}

// EffectiveCount picks the count to enforce the budget with: the signed
// count wins over a lower claimed one.
func EffectiveCount(claimed int, c Claims, ok bool) int {
	if claimed < 0 {
		claimed = 0
	}
	if ok && c.InteractionCount > claimed {
		return c.InteractionCount
	}
	return claimed
}
