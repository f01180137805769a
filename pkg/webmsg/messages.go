// pkg/webmsg/messages.go
package webmsg

import "fmt"

// Message codes travel in the ?msg= query parameter so a successful
// mutation can redirect instead of re-rendering (no duplicate submits
// on refresh).
const (
	MenuAdded     = "menuadded"
	MenuUpdated   = "menuupdated"
	MenuDeleted   = "menudeleted"
	NotFound      = "notfound"
	LoggedOut     = "loggedout"
	LoginRequired = "loginrequired"
	Reserved      = "reserved"
	Ordered       = "ordered"
)

var banners = map[string]string{
	MenuAdded:     "Menu item added.",
	MenuUpdated:   "Menu item updated.",
	MenuDeleted:   "Menu item deleted.",
	NotFound:      "Menu item not found.",
	LoggedOut:     "You have been logged out.",
	LoginRequired: "Please log in first.",
	Reserved:      "Reservation successful!",
	Ordered:       "Order placed! Thank you.",
}

// Banner maps a code to its display text. Unknown codes render nothing.
func Banner(code string) string {
	return banners[code]
}

func HomePath(msg string) string {
	if msg == "" {
		return "/?page=home"
	}
	return fmt.Sprintf("/?page=home&msg=%s", msg)
}

func LoginPath(msg string) string {
	if msg == "" {
		return "/?page=admin"
	}
	return fmt.Sprintf("/?page=admin&msg=%s", msg)
}

func DashboardPath(tab, msg string) string {
	p := "/?page=dashboard"
	if tab != "" {
		p += "&tab=" + tab
	}
	if msg != "" {
		p += "&msg=" + msg
	}
	return p
}
