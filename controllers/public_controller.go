package controllers

import (
	"errors"
	"net/http"

	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/webmsg"
	"github.com/Zaara786/plush-palate/services"

	"github.com/gin-gonic/gin"
)

// PublicController handles the two visitor mutations: table
// reservations and order placement. No auth involved.
type PublicController struct {
	Reservations *services.ReservationService
	Orders       *services.OrderService
	Pages        *PageController
}

func NewPublicController(resv *services.ReservationService, orders *services.OrderService, pages *PageController) *PublicController {
	return &PublicController{Reservations: resv, Orders: orders, Pages: pages}
}

// POST / with form marker "reserve"
func (p *PublicController) Reserve(c *gin.Context) {
	in := services.ReservationInput{
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		Persons: c.PostForm("persons"),
		Date:    c.PostForm("date"),
		Time:    c.PostForm("time"),
	}
	if _, err := p.Reservations.Create(in); err != nil {
		p.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, webmsg.HomePath(webmsg.Reserved))
}

// POST / with form marker "place_order"
func (p *PublicController) PlaceOrder(c *gin.Context) {
	_, err := p.Orders.Place(c.PostForm("item_id"), c.PostForm("quantity"), c.PostForm("table_no"))
	if err != nil {
		p.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, webmsg.HomePath(webmsg.Ordered))
}

func (p *PublicController) fail(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		p.Pages.Home(c, http.StatusBadRequest, ve.Message)
		return
	}
	p.Pages.ServerError(c, err)
}
