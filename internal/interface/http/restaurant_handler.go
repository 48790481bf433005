package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-restaurant-api/internal/application"
	"github.com/oksasatya/go-restaurant-api/internal/infrastructure/yelp"
	"github.com/oksasatya/go-restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/go-restaurant-api/pkg/response"
	"github.com/oksasatya/go-restaurant-api/pkg/validation"
)

// BusinessSearcher is the external search collaborator. The handler forwards
// criteria unmodified and relays the result verbatim.
type BusinessSearcher interface {
	SearchBusinesses(ctx context.Context, crit yelp.SearchCriteria) ([]byte, error)
}

type RestaurantHandler struct {
	Svc             *application.RestaurantService
	Searcher        BusinessSearcher
	Logger          *logrus.Logger
	DefaultLocation string
}

func NewRestaurantHandler(svc *application.RestaurantService, searcher BusinessSearcher, logger *logrus.Logger, defaultLocation string) *RestaurantHandler {
	return &RestaurantHandler{Svc: svc, Searcher: searcher, Logger: logger, DefaultLocation: defaultLocation}
}

type restaurantRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
}

// GetBusiness proxies a business search. With both longitude and latitude
// query params present the coordinates are forwarded verbatim; otherwise the
// default location is searched.
func (h *RestaurantHandler) GetBusiness(c *gin.Context) {
	longitude := c.Query("longitude")
	latitude := c.Query("latitude")

	crit := yelp.SearchCriteria{Location: h.DefaultLocation}
	if longitude != "" && latitude != "" {
		crit = yelp.SearchCriteria{Longitude: longitude, Latitude: latitude}
	}

	body, err := h.Searcher.SearchBusinesses(c.Request.Context(), crit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// SetFavourite appends the restaurant to the current user's favourites.
func (h *RestaurantHandler) SetFavourite(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing restaurant ID")
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.SetFavourite(c.Request.Context(), uid, req.RestaurantID); err != nil {
		h.writeMutationError(c, uid, err)
		return
	}
	response.Message(c, http.StatusOK, "Set favourite successful")
}

// UnsetFavourite removes every occurrence of the restaurant from the current
// user's favourites.
func (h *RestaurantHandler) UnsetFavourite(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing restaurant ID")
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.UnsetFavourite(c.Request.Context(), uid, req.RestaurantID); err != nil {
		h.writeMutationError(c, uid, err)
		return
	}
	response.Message(c, http.StatusOK, "Unset favourite successful")
}

// Reserve creates a pending reservation for the current user.
func (h *RestaurantHandler) Reserve(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	if _, err := h.Svc.Reserve(c.Request.Context(), uid, req.RestaurantID); err != nil {
		h.writeMutationError(c, uid, err)
		return
	}
	response.Message(c, http.StatusOK, "Reservation successful")
}

// writeMutationError maps service errors to the wire: a missing user is the
// client's fault, anything else goes to the generic error path.
func (h *RestaurantHandler) writeMutationError(c *gin.Context, uid string, err error) {
	if errors.Is(err, application.ErrUserNotFound) {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("store operation failed")
	}
	response.Error(c, http.StatusInternalServerError, "internal server error")
}
