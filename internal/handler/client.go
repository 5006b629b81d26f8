package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientCookie names the cookie holding the browser's client id.
const ClientCookie = "he_client"

const (
	clientIDKey     = "client_id"
	clientCookieAge = 365 * 24 * 60 * 60
)

// ClientIDMiddleware gives every browser a stable client id. Session entries are
// stored under that id, so the cookie itself carries no credentials.
func ClientIDMiddleware(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(ClientCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     ClientCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   clientCookieAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(clientIDKey, id)
			return next(c)
		}
	}
}

// ClientID returns the id set by ClientIDMiddleware.
func ClientID(c echo.Context) string {
	id, _ := c.Get(clientIDKey).(string)
	return id
}
