package server

import (
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := s.decode(w, r, &request); err != nil {
		s.writeError(w, r, err)

		return
	}

	token, err := s.auth.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}

// Logout only acknowledges the request. Tokens are stateless and stay valid
// until they expire, so clients are expected to discard theirs.
func (s *Server) Logout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
