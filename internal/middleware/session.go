package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "cart_session"

// CartSession assigns a uuid cookie identifying the visitor's cart.
// The cookie bounds the cart's lifetime; there are no user accounts.
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookie)
			if err == nil && cookie.Value != "" {
				c.Set("session_id", cookie.Value)
				return next(c)
			}

			sessionID := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set("session_id", sessionID)
			return next(c)
		}
	}
}

// SessionID returns the cart session id set by CartSession.
func SessionID(c echo.Context) string {
	id, _ := c.Get("session_id").(string)
	return id
}
