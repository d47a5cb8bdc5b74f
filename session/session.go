// Package session stores the authenticated principal in a signed cookie
// session.
package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"club-review/config"
	"club-review/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func init() {
	gob.Register(models.Principal{})
}

// Middleware installs the cookie-backed session store on the engine.
func Middleware(cfg config.Session) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.Name, store)
}

func SetLoginUser(c *gin.Context, principal models.Principal) error {
	s := sessions.Default(c)
	s.Set(loginUser, principal)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *models.Principal {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if principal, ok := obj.(models.Principal); ok {
			return &principal
		}
	}
	return nil
}

// ClearSession drops the principal. It succeeds when nobody is logged in.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
