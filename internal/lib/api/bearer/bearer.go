// Package bearer extracts the access token the session layer forwards in the
// Authorization header. Token issuance and refresh are handled upstream.
package bearer

import (
	"net/http"
	"strings"
)

const prefix = "Bearer "

// FromRequest returns the bearer token of the request, if any.
func FromRequest(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}
