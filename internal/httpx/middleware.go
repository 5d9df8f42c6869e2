// Package httpx holds the gin middleware shared by every route.
package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/MikeMC777/dryfruits-storefront/internal/user"
)

const (
	ridKey = "rid"
	uidKey = "uid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// Log returns a logger tagged with the request id (and user id once known).
func Log(c *gin.Context) *log.Entry {
	fields := log.Fields{"rid": c.GetString(ridKey)}
	if uid := c.GetString(uidKey); uid != "" {
		fields["user_id"] = uid
	}
	return log.WithFields(fields)
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := Log(c).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"dur":    time.Since(start).String(),
			"ip":     c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("[http]")
		case status >= http.StatusBadRequest:
			entry.Warn("[http]")
		default:
			entry.Info("[http]")
		}
	}
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireUser rejects requests without a valid session and stores the
// caller's id for UserID.
func RequireUser(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := auth.Authenticate(c.Request.Context(), BearerToken(c))
		if errors.Is(err, user.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err != nil {
			Log(c).WithError(err).Error("[auth] session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		c.Set(uidKey, uid)
		c.Next()
	}
}

func UserID(c *gin.Context) string { return c.GetString(uidKey) }
