package sessions

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Signer signs and verifies session cookie values. A cookie value is
// "<token>.<hex hmac-sha256(secret, token)>", so a forged cookie is
// rejected without touching the session store.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) Signer {
	return Signer{secret: []byte(secret)}
}

// Value returns the signed cookie value for a token.
func (s Signer) Value(token string) string {
	return token + "." + s.sign(token)
}

// Verify checks a cookie value's signature and returns the embedded
// token. Malformed input of any kind yields ok=false, same as an
// absent cookie. Comparison is constant time.
func (s Signer) Verify(value string) (token string, ok bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" || sig == "" {
		return "", false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}
	want, err := hex.DecodeString(s.sign(token))
	if err != nil {
		return "", false
	}
	if !hmac.Equal(got, want) {
		return "", false
	}
	return token, true
}

func (s Signer) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
