package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/kiokosk/CustomerProjectManagement/config"
	httpapi "github.com/kiokosk/CustomerProjectManagement/internal/api/http"
	"github.com/kiokosk/CustomerProjectManagement/internal/api/http/middleware"
	"github.com/kiokosk/CustomerProjectManagement/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Server      config.ServerConfig
	DB          *sqlx.DB
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.Server.CORSOrigins)))
	r.Use(middleware.RateLimit(dep.Server.RateLimitRPS, dep.Server.RateLimitBurst))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger).RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{DB: dep.DB})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
