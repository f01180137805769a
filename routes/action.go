package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Action is the one thing a request can do. Every request classifies
// to exactly one of these; the dispatcher switch is total.
type Action int

const (
	ActionRenderPage Action = iota
	ActionLogin
	ActionLogout
	ActionAddMenu
	ActionEditMenu
	ActionDeleteMenu
	ActionReserve
	ActionPlaceOrder
)

// Classify maps (method, query, form marker) onto an action. Priority
// is fixed: auth first, then admin mutations, then public mutations,
// then page rendering.
func Classify(c *gin.Context) Action {
	post := c.Request.Method == http.MethodPost

	if post && hasMarker(c, "login") {
		return ActionLogin
	}
	if c.Query("logout") != "" {
		return ActionLogout
	}

	if post && hasMarker(c, "add_menu") {
		return ActionAddMenu
	}
	if post && hasMarker(c, "edit_menu") {
		return ActionEditMenu
	}
	if c.Query("act") == "delmenu" {
		return ActionDeleteMenu
	}

	if post && hasMarker(c, "reserve") {
		return ActionReserve
	}
	if post && hasMarker(c, "place_order") {
		return ActionPlaceOrder
	}

	return ActionRenderPage
}

func hasMarker(c *gin.Context, field string) bool {
	_, ok := c.GetPostForm(field)
	return ok
}
