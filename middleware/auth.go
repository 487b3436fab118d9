package middleware

import (
	"net/http"

	"github.com/sushushu7/antonia-blog/database"
	"github.com/sushushu7/antonia-blog/models"
	"github.com/sushushu7/antonia-blog/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// CurrentUser resolves the session cookie to a user record for every
// request. Requests without a valid session proceed as anonymous.
func CurrentUser(db database.Database, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err == nil && token != "" {
			if userID, err := utils.ParseSessionToken(token, secret); err == nil {
				if user, err := db.Users().FindByID(userID); err == nil {
					c.Set(currentUserKey, user)
				}
			}
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for this request, or nil when the
// request is anonymous.
func UserFrom(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// LoginRequired bounces anonymous requests to the login page with a flash
// message. The wrapped handler never runs for them.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			utils.SetFlash(c, "Please log in first.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly permits only the configured administrator identity. Everyone
// else, authenticated or not, gets a 403 with no side effects.
func AdminOnly(adminID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if user == nil || user.ID != adminID {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
