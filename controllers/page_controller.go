package controllers

import (
	"net/http"
	"strconv"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/middlewares"
	"github.com/Zaara786/plush-palate/pkg/webmsg"
	"github.com/Zaara786/plush-palate/services"
	"github.com/Zaara786/plush-palate/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	overviewReservations = 8
	listLimit            = 200
)

// PageController renders every read path. Mutation controllers call
// back into it when a form has to be re-shown with an inline error.
type PageController struct {
	Menu         *services.MenuService
	Orders       *services.OrderService
	Reservations *services.ReservationService
}

func NewPageController(menu *services.MenuService, orders *services.OrderService, resv *services.ReservationService) *PageController {
	return &PageController{Menu: menu, Orders: orders, Reservations: resv}
}

// GET ?page={home,admin,dashboard}
func (p *PageController) Render(c *gin.Context) {
	switch c.DefaultQuery("page", "home") {
	case "home":
		p.Home(c, http.StatusOK, "")
	case "admin":
		p.AdminLogin(c, http.StatusOK, "")
	case "dashboard":
		if !middlewares.RequireAdmin(c) {
			return
		}
		p.Dashboard(c, http.StatusOK, c.DefaultQuery("tab", "overview"), "")
	default:
		p.NotFound(c)
	}
}

// Home renders the public page: menu grid, reservation form, order form.
func (p *PageController) Home(c *gin.Context, status int, formError string) {
	items, err := p.Menu.List()
	if err != nil {
		p.ServerError(c, err)
		return
	}
	categories, err := p.Menu.Categories()
	if err != nil {
		p.ServerError(c, err)
		return
	}
	available, err := p.Menu.ListAvailable()
	if err != nil {
		p.ServerError(c, err)
		return
	}

	c.HTML(status, "home.tmpl", gin.H{
		"Actor":      utils.CurrentAdmin(c),
		"Banner":     webmsg.Banner(c.Query("msg")),
		"Error":      formError,
		"Items":      items,
		"Categories": categories,
		"Available":  available,
	})
}

func (p *PageController) AdminLogin(c *gin.Context, status int, formError string) {
	c.HTML(status, "admin_login.tmpl", gin.H{
		"Actor":    utils.CurrentAdmin(c),
		"Banner":   webmsg.Banner(c.Query("msg")),
		"Error":    formError,
		"Username": c.PostForm("username"),
	})
}

// Dashboard renders one of the four tabs. Callers have already passed
// the RequireAdmin gate.
func (p *PageController) Dashboard(c *gin.Context, status int, tab, formError string) {
	data := gin.H{
		"Actor":  utils.CurrentAdmin(c),
		"Tab":    tab,
		"Banner": webmsg.Banner(c.Query("msg")),
		"Error":  formError,
	}

	switch tab {
	case "menu":
		items, err := p.Menu.List()
		if err != nil {
			p.ServerError(c, err)
			return
		}
		data["Items"] = items
		data["EditItem"] = p.editItem(c)
	case "orders":
		orders, err := p.Orders.Recent(listLimit)
		if err != nil {
			p.ServerError(c, err)
			return
		}
		data["Orders"] = orders
	case "resv":
		resvs, err := p.Reservations.Recent(listLimit)
		if err != nil {
			p.ServerError(c, err)
			return
		}
		data["Reservations"] = resvs
	default:
		data["Tab"] = "overview"
		menuCount, err := p.Menu.Count()
		if err != nil {
			p.ServerError(c, err)
			return
		}
		orderCount, err := p.Orders.Count()
		if err != nil {
			p.ServerError(c, err)
			return
		}
		resvCount, err := p.Reservations.Count()
		if err != nil {
			p.ServerError(c, err)
			return
		}
		recent, err := p.Reservations.Recent(overviewReservations)
		if err != nil {
			p.ServerError(c, err)
			return
		}
		data["MenuCount"] = menuCount
		data["OrderCount"] = orderCount
		data["ReservationCount"] = resvCount
		data["RecentReservations"] = recent
	}

	c.HTML(status, "dashboard.tmpl", data)
}

// ?edit=<id> prefills the menu form; a bad or stale id just means no prefill
func (p *PageController) editItem(c *gin.Context) *entity.MenuItem {
	raw := c.Query("edit")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return nil
	}
	item, err := p.Menu.Get(uint(id))
	if err != nil {
		return nil
	}
	return item
}

func (p *PageController) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
		"Actor": utils.CurrentAdmin(c),
	})
}

// ServerError is the request-time StoreUnavailable surface: log it,
// show the generic failure page, abort.
func (p *PageController) ServerError(c *gin.Context, err error) {
	logrus.WithError(err).Error("request failed")
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"Actor": utils.CurrentAdmin(c),
	})
	c.Abort()
}
