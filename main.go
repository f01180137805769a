package main

import (
	"fmt"

	"github.com/Zaara786/plush-palate/configs"
	"github.com/Zaara786/plush-palate/middlewares"
	"github.com/Zaara786/plush-palate/pkg/session"
	"github.com/Zaara786/plush-palate/routes"
	"github.com/Zaara786/plush-palate/views"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB: any failure here aborts startup
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("database unavailable: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}

	// server-side sessions, injected into the router
	store := session.NewStore(cfg.SessionTTL)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.SetHTMLTemplate(views.Load())

	routes.RegisterRoutes(r, db, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("🚀 Server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
