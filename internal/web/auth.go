package web

import (
	"net/http"

	"rental-console/internal/logger"
)

type loginPage struct {
	Error string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login.html", loginPage{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := formStr(r, "username")
	password := r.FormValue("password")

	token, err := s.sessions.Login(username, password)
	if err != nil {
		logger.Warn("Login rejected", "username", username)
		s.render(w, http.StatusUnauthorized, "login.html", loginPage{
			Error: "Invalid username or password.",
		})
		return
	}

	setSessionCookie(w, token, s.sessionTTL)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
