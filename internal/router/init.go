package router

import (
	"github.com/oksasatya/go-restaurant-api/internal/application"
	"github.com/oksasatya/go-restaurant-api/internal/container"
	pginfra "github.com/oksasatya/go-restaurant-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-restaurant-api/internal/interface/http"
	"github.com/oksasatya/go-restaurant-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	reservationRepo := pginfra.NewReservationRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetSessions(),
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	restaurantSvc := application.NewRestaurantService(
		userRepo,
		reservationRepo,
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)

	authHandler := handlers.NewAuthHandler(
		userSvc,
		container.GetJWT(),
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
	)
	restaurantHandler := handlers.NewRestaurantHandler(
		restaurantSvc,
		container.GetYelp(),
		container.GetLogger(),
		cfg.YelpDefaultLocation,
	)
	debugHandler := handlers.NewDebugHandler(restaurantSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewRestaurantModule(restaurantHandler, container.GetJWT()))
	r.Add(modules.NewDebugModule(debugHandler))
}
