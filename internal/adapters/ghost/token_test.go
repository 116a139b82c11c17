package ghost

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseAdminKey(t *testing.T) {
	key, err := ParseAdminKey("62fa3ec1a0f9b8c7d6e5f4a3:deadbeef")
	if err != nil {
		t.Fatalf("parse valid key: %v", err)
	}
	if key.ID != "62fa3ec1a0f9b8c7d6e5f4a3" {
		t.Fatalf("unexpected key id %q", key.ID)
	}
	if len(key.Secret) != 4 || key.Secret[0] != 0xde {
		t.Fatalf("secret not hex-decoded: %v", key.Secret)
	}

	for _, raw := range []string{"", "nocolon", ":deadbeef", "id:", "id:not-hex"} {
		if _, err := ParseAdminKey(raw); err == nil {
			t.Fatalf("expected error for admin key %q", raw)
		}
	}
}

func TestAdminKeyToken(t *testing.T) {
	key, err := ParseAdminKey("62fa3ec1a0f9b8c7d6e5f4a3:deadbeef")
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	token, err := key.Token(now)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	var header tokenHeader
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if header.Alg != "HS256" || header.Typ != "JWT" || header.KID != key.ID {
		t.Fatalf("unexpected header %+v", header)
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode claims: %v", err)
	}
	var claims tokenClaims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		t.Fatalf("unmarshal claims: %v", err)
	}
	if claims.Audience != "/admin/" {
		t.Fatalf("unexpected audience %q", claims.Audience)
	}
	if claims.IssuedAt != now.Unix() {
		t.Fatalf("iat = %d, want %d", claims.IssuedAt, now.Unix())
	}
	if claims.ExpiresAt != now.Add(5*time.Minute).Unix() {
		t.Fatalf("exp = %d, want %d", claims.ExpiresAt, now.Add(5*time.Minute).Unix())
	}

	mac := hmac.New(sha256.New, key.Secret)
	mac.Write([]byte(parts[0] + "." + parts[1]))
	wantSig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if parts[2] != wantSig {
		t.Fatalf("signature mismatch: got %q, want %q", parts[2], wantSig)
	}
}
