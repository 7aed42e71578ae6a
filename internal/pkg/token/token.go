package token

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims are the fields the Dayflow API embeds in its session tokens.
type Claims struct {
	UserID     string
	EmployeeID string
	Role       string
	ExpiresAt  time.Time
}

// Expired reports whether the token's expiry has passed.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes a Dayflow session token without verifying its signature.
// The agent does not hold the server's signing secret; the claims are used
// only to backfill session fields and report expiry, never as an
// authorization decision.
func Inspect(raw string) (*Claims, error) {
	tok, err := jwt.ParseInsecure([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	claims := &Claims{
		ExpiresAt: tok.Expiration(),
	}
	if v, ok := tok.Get("id"); ok {
		if s, ok := v.(string); ok {
			claims.UserID = s
		}
	}
	if v, ok := tok.Get("employeeId"); ok {
		if s, ok := v.(string); ok {
			claims.EmployeeID = s
		}
	}
	if v, ok := tok.Get("role"); ok {
		if s, ok := v.(string); ok {
			claims.Role = s
		}
	}

	return claims, nil
}
