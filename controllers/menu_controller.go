package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/webmsg"
	"github.com/Zaara786/plush-palate/services"

	"github.com/gin-gonic/gin"
)

// MenuController handles the admin menu mutations. The dispatcher has
// already run the RequireAdmin gate before any of these execute.
type MenuController struct {
	Menu  *services.MenuService
	Pages *PageController
}

func NewMenuController(menu *services.MenuService, pages *PageController) *MenuController {
	return &MenuController{Menu: menu, Pages: pages}
}

// POST / with form marker "add_menu"
func (m *MenuController) Add(c *gin.Context) {
	if _, err := m.Menu.Create(menuInput(c)); err != nil {
		m.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("menu", webmsg.MenuAdded))
}

// POST / with form marker "edit_menu"
func (m *MenuController) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil || id < 1 {
		m.fail(c, apperr.Invalid("id", "invalid menu item id"))
		return
	}
	if err := m.Menu.Update(uint(id), menuInput(c)); err != nil {
		m.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("menu", webmsg.MenuUpdated))
}

// GET /?act=delmenu&id=<id>
func (m *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("menu", webmsg.NotFound))
		return
	}
	if err := m.Menu.Delete(uint(id)); err != nil {
		m.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("menu", webmsg.MenuDeleted))
}

func (m *MenuController) fail(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		m.Pages.Dashboard(c, http.StatusBadRequest, "menu", ve.Message)
	case errors.Is(err, apperr.ErrNotFound):
		c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("menu", webmsg.NotFound))
	default:
		m.Pages.ServerError(c, err)
	}
}

// checkbox absence means unavailable, never an error
func menuInput(c *gin.Context) services.MenuItemInput {
	_, available := c.GetPostForm("is_available")
	return services.MenuItemInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		IsAvailable: available,
	}
}
