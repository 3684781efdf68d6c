package server

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// authorize checks the Authorization header of a destructive request against
// the configured admin token hash. With no hash configured the destructive
// endpoints are disabled outright.
func (s *Server) authorize(r *http.Request) (int, string) {
	hash := s.config.Admin.TokenHash
	if hash == "" {
		return http.StatusForbidden, "destructive endpoints are disabled; no admin token configured"
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return http.StatusUnauthorized, "missing bearer token"
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		return http.StatusUnauthorized, "invalid admin token"
	}

	return http.StatusOK, ""
}
