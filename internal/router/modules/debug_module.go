package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-restaurant-api/internal/interface/http"
)

// DebugModule exposes the raw collection dumps. The routes are deliberately
// ungated to match the clients that rely on them, which makes them a known
// exposure; do not ship them reachable from the public internet.
type DebugModule struct {
	Handler *handlers.DebugHandler
}

func NewDebugModule(h *handlers.DebugHandler) *DebugModule {
	return &DebugModule{Handler: h}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users", m.Handler.ListUsers)
	rg.GET("/reservations", m.Handler.ListReservations)
}
