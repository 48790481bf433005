package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-restaurant-api/internal/container"
	handlers "github.com/oksasatya/go-restaurant-api/internal/interface/http"
	"github.com/oksasatya/go-restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
)

// RestaurantModule wires the session-guarded discovery and booking routes.
type RestaurantModule struct {
	Handler *handlers.RestaurantHandler
	JWT     *helpers.JWTManager
}

func NewRestaurantModule(h *handlers.RestaurantHandler, jwt *helpers.JWTManager) *RestaurantModule {
	return &RestaurantModule{Handler: h, JWT: jwt}
}

func (m *RestaurantModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireSession(container.GetSessions(), m.JWT))
	{
		auth.GET("/get_business", m.Handler.GetBusiness)
		auth.POST("/setFavourite", m.Handler.SetFavourite)
		auth.POST("/unsetFavourite", m.Handler.UnsetFavourite)
		auth.POST("/reserve", m.Handler.Reserve)
	}
}
