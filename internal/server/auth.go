package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/Cyclone1070/fileview/internal/logging"
	"github.com/Cyclone1070/fileview/internal/metrics"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	sessionName   = "fileview"
	sessionUser   = "user"
	sessionMaxAge = 86400 * 7
)

// loginResponse keeps the string status of the login form API.
type loginResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
}

// newSessionStore derives the cookie key from secret, or draws a random one.
func newSessionStore(secret string) (*sessions.CookieStore, error) {
	var key []byte
	if secret != "" {
		sum := sha256.Sum256([]byte(secret))
		key = sum[:]
	} else {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errRandomKey
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

// authorised reports whether the request may use the API.
func (s *Server) authorised(c echo.Context) bool {
	if s.store == nil {
		return true
	}
	sess, err := s.store.Get(c.Request(), sessionName)
	if err != nil {
		return false
	}
	user, ok := sess.Values[sessionUser].(string)
	return ok && user == s.config.Auth.Username
}

func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.authorised(c) {
			return c.JSON(http.StatusForbidden, map[string]any{"status": 0, "msg": "login required"})
		}
		return next(c)
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	if !s.authorised(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{"status": 0, "msg": "login required"})
	}
	return c.Redirect(http.StatusFound, "/api/list")
}

func (s *Server) handleLogin(c echo.Context) error {
	if s.store == nil {
		return c.JSON(http.StatusOK, loginResponse{Status: "1"})
	}

	logger := logging.WithContext(c.Request().Context())
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !credentialsMatch(username, password, s.config.Auth.Username, s.config.Auth.Password) {
		metrics.RecordAuthAttempt(false)
		logger.Warn("login failed", zap.String("username", username))
		return c.JSON(http.StatusOK, loginResponse{Status: "0", Msg: "wrong username or password"})
	}

	sess, _ := s.store.Get(c.Request(), sessionName)
	sess.Values[sessionUser] = username
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	metrics.RecordAuthAttempt(true)
	logger.Info("login", zap.String("username", username))
	return c.JSON(http.StatusOK, loginResponse{Status: "1"})
}

func (s *Server) handleLogout(c echo.Context) error {
	if s.store != nil {
		sess, _ := s.store.Get(c.Request(), sessionName)
		sess.Values = map[any]any{}
		sess.Options.MaxAge = -1
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, loginResponse{Status: "1"})
}

func credentialsMatch(username, password, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOK && passOK
}
