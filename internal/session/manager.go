package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"airbook/pkg/logger"
)

const (
	cookieName = "airbook_sid"
	contextKey = "airbook.session"
)

// Manager attaches a server-side session to every request, creating one
// and setting the cookie when none exists or the old one expired.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger logger.Client
}

func NewManager(store Store, ttlMinutes int, log logger.Client) *Manager {
	return &Manager{
		store:  store,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: log,
	}
}

// Middleware resolves or creates the request's session.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(cookieName); err == nil {
			if sess, err := m.store.Get(id); err == nil {
				c.Set(contextKey, sess)
				c.Next()
				return
			}
		}

		sess, err := m.store.Create(m.ttl)
		if err != nil {
			m.logger.Error("session create failed", logger.Field{Key: "err", Value: err})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.SetCookie(cookieName, sess.ID, int(m.ttl.Seconds()), "/", "", false, true)
		c.Set(contextKey, sess)
		c.Next()
	}
}

// FromContext returns the session the middleware attached to the request.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return nil
}
