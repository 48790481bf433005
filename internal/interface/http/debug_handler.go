package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-restaurant-api/internal/application"
	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	"github.com/oksasatya/go-restaurant-api/pkg/response"
)

// DebugHandler serves the unfiltered collection dumps. These routes exist for
// inspection during development and carry no authorization gate.
type DebugHandler struct {
	Svc    *application.RestaurantService
	Logger *logrus.Logger
}

func NewDebugHandler(svc *application.RestaurantService, logger *logrus.Logger) *DebugHandler {
	return &DebugHandler{Svc: svc, Logger: logger}
}

type usersResponse struct {
	FoundUsers []*entity.User `json:"foundUsers"`
}

type reservationsResponse struct {
	Reservations []*entity.Reservation `json:"reservations"`
}

func (h *DebugHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list users failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, usersResponse{FoundUsers: users})
}

func (h *DebugHandler) ListReservations(c *gin.Context) {
	reservations, err := h.Svc.ListReservations(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list reservations failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, reservationsResponse{Reservations: reservations})
}
