package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

const (
	SessionCookieName = "session"
	SessionContextKey = "session"
)

// SessionTokens issues and reads the signed session cookie value.
type SessionTokens interface {
	NewSession() (string, string, error)
	Parse(token string) (string, error)
}

// CookieOptions controls how the session cookie is written.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware resolves the request's session from its cookie. A missing
// or invalid cookie starts a new, unresolved session.
func SessionMiddleware(tokens SessionTokens, sessions services.SessionService, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if sid, err := tokens.Parse(raw); err == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sid, token, err := tokens.NewSession()
			if err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
				return
			}
			sessionID = sid
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		}

		session, err := sessions.Restore(c.Request.Context(), sessionID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession extracts the session resolved by SessionMiddleware.
func GetSession(c *gin.Context) (*models.Session, error) {
	if val, ok := c.Get(SessionContextKey); ok {
		if session, ok := val.(*models.Session); ok && session != nil {
			return session, nil
		}
	}
	return nil, errors.New("session not found in context")
}

// RequireIdentified rejects sessions that have not submitted an identity.
func RequireIdentified() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil || !session.Identified() {
			apperrors.Respond(c, apperrors.ErrNotIdentified)
			return
		}
		c.Next()
	}
}

// AdminOnly restricts access to admin sessions.
func AdminOnly() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, apperrors.ErrAdminRequired)
}

// BuyerOnly restricts access to buyer sessions.
func BuyerOnly() gin.HandlerFunc {
	return requireRole(models.RoleBuyer, apperrors.ErrBuyerRequired)
}

func requireRole(role models.Role, denied *apperrors.Error) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSession(c)
		if err != nil || !session.Identified() {
			apperrors.Respond(c, apperrors.ErrNotIdentified)
			return
		}
		if session.Identity.Role() != role {
			apperrors.Respond(c, denied)
			return
		}
		c.Next()
	}
}
