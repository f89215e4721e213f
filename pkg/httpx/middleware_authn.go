package httpx

import (
	"net/http"
	"strings"
)

// ParseBearer extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SetBearerChallenge adds an RFC 6750 WWW-Authenticate header. code is the
// bearer error code such as "invalid_token"; empty means no token was sent.
func SetBearerChallenge(w http.ResponseWriter, code, desc string) {
	v := `Bearer realm="fly8"`
	if code != "" {
		v += `, error="` + code + `"`
	}
	if desc != "" {
		v += `, error_description="` + desc + `"`
	}
	w.Header().Set("WWW-Authenticate", v)
}
