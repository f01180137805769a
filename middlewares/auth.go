package middlewares

import (
	"net/http"

	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/session"
	"github.com/Zaara786/plush-palate/pkg/webmsg"
	"github.com/Zaara786/plush-palate/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie holds the opaque token; it maps to server-side state
// in the session store and carries nothing else.
const SessionCookie = "pp_session"

// SessionMiddleware resolves the cookie into an explicit actor on the
// context. It never aborts; anonymous requests just carry no actor.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil {
			if sess, ok := store.Get(token); ok {
				utils.SetActor(c, &utils.Actor{ID: sess.AdminID, FullName: sess.FullName})
			}
		}
		c.Next()
	}
}

// RequireAdmin is the single authorization gate. Called by the
// dispatcher before any admin action; anonymous requests are sent to
// the login page and the action never runs.
func RequireAdmin(c *gin.Context) bool {
	if utils.CurrentAdmin(c) == nil {
		_ = c.Error(apperr.ErrAuthRequired)
		c.Redirect(http.StatusSeeOther, webmsg.LoginPath(webmsg.LoginRequired))
		c.Abort()
		return false
	}
	return true
}
