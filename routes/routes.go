package routes

import (
	"github.com/Zaara786/plush-palate/configs"
	"github.com/Zaara786/plush-palate/controllers"
	"github.com/Zaara786/plush-palate/middlewares"
	"github.com/Zaara786/plush-palate/pkg/session"
	"github.com/Zaara786/plush-palate/repository"
	"github.com/Zaara786/plush-palate/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store *session.Store) {
	r.Use(middlewares.SessionMiddleware(store))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	resvRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, store)
	menuSvc := services.NewMenuService(menuRepo)
	resvSvc := services.NewReservationService(resvRepo)
	orderSvc := services.NewOrderService(orderRepo, menuRepo)

	// Controllers
	pages := controllers.NewPageController(menuSvc, orderSvc, resvSvc)
	auth := controllers.NewAuthController(authSvc, pages, cfg.SessionTTL)
	menu := controllers.NewMenuController(menuSvc, pages)
	public := controllers.NewPublicController(resvSvc, orderSvc, pages)

	d := &dispatcher{auth: auth, menu: menu, public: public, pages: pages}

	// the whole app lives behind one path, routed by query and form
	r.GET("/", d.Handle)
	r.POST("/", d.Handle)
	r.NoRoute(pages.NotFound)
}

type dispatcher struct {
	auth   *controllers.AuthController
	menu   *controllers.MenuController
	public *controllers.PublicController
	pages  *controllers.PageController
}

func (d *dispatcher) Handle(c *gin.Context) {
	switch Classify(c) {
	case ActionLogin:
		d.auth.Login(c)
	case ActionLogout:
		d.auth.Logout(c)
	case ActionAddMenu:
		if !middlewares.RequireAdmin(c) {
			return
		}
		d.menu.Add(c)
	case ActionEditMenu:
		if !middlewares.RequireAdmin(c) {
			return
		}
		d.menu.Edit(c)
	case ActionDeleteMenu:
		if !middlewares.RequireAdmin(c) {
			return
		}
		d.menu.Delete(c)
	case ActionReserve:
		d.public.Reserve(c)
	case ActionPlaceOrder:
		d.public.PlaceOrder(c)
	case ActionRenderPage:
		d.pages.Render(c)
	}
}
