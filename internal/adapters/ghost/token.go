package ghost

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// tokenTTL keeps minted tokens short-lived, as the Admin API expects.
const tokenTTL = 5 * time.Minute

// AdminKey is a Ghost Admin API key split into its key id and decoded secret.
type AdminKey struct {
	ID     string
	Secret []byte
}

// ParseAdminKey splits a raw "<id>:<hex secret>" admin key.
func ParseAdminKey(raw string) (AdminKey, error) {
	id, hexSecret, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || id == "" || hexSecret == "" {
		return AdminKey{}, fmt.Errorf("ghost: admin key must be <id>:<secret>")
	}
	secret, err := hex.DecodeString(hexSecret)
	if err != nil {
		return AdminKey{}, fmt.Errorf("ghost: decode admin key secret: %w", err)
	}
	return AdminKey{ID: id, Secret: secret}, nil
}

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
	KID string `json:"kid"`
}

type tokenClaims struct {
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	Audience  string `json:"aud"`
}

// Token mints the short-lived HS256 JWT the Admin API authenticates with.
func (k AdminKey) Token(now time.Time) (string, error) {
	header, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT", KID: k.ID})
	if err != nil {
		return "", fmt.Errorf("ghost: marshal token header: %w", err)
	}
	claims, err := json.Marshal(tokenClaims{
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
		Audience:  "/admin/",
	})
	if err != nil {
		return "", fmt.Errorf("ghost: marshal token claims: %w", err)
	}
	signed := base64.RawURLEncoding.EncodeToString(header) + "." + base64.RawURLEncoding.EncodeToString(claims)
	mac := hmac.New(sha256.New, k.Secret)
	mac.Write([]byte(signed))
	return signed + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}
