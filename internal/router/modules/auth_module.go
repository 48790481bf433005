package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-restaurant-api/internal/interface/http"
)

// AuthModule wires the credential routes.
// POST /register and /login are public; /logout resolves the session itself
// so a cookieless call can still answer the contract's 400.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
}
