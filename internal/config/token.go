package config

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// tokenExpiryBuffer avoids handing out tokens that expire mid-invocation.
const tokenExpiryBuffer = 5 * time.Minute

// TokenValid reports whether a saved JWT is still usable at the given time.
// Only the exp claim is inspected; the signature is not verified since the
// server does that on every call anyway. Tokens without an exp claim are
// accepted, malformed tokens are not.
func TokenValid(token string, now time.Time) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}
	if claims.Exp == 0 {
		return true
	}
	return time.Unix(claims.Exp, 0).After(now.Add(tokenExpiryBuffer))
}
