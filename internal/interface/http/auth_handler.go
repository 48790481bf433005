package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-restaurant-api/internal/application"
	"github.com/oksasatya/go-restaurant-api/internal/domain/repository"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
	"github.com/oksasatya/go-restaurant-api/pkg/response"
	"github.com/oksasatya/go-restaurant-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.UserService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.UserService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register creates an account. The password hash is never echoed back.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Error("register failed")
		}
		response.Error(c, http.StatusBadRequest, "registration failed")
		return
	}

	c.JSON(http.StatusOK, registerResponse{Email: u.Email, Message: "registration successful"})
}

// Login verifies credentials and sets the session cookie. Bad credentials
// answer 200 with {success:false}; clients branch on the success flag, not
// the status code.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, loginFailureResponse{Success: false, Message: "authentication failed"})
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, loginFailureResponse{Success: false, Message: "authentication failed"})
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Cookies.SetSession(c, token, exp)
	c.JSON(http.StatusOK, loginResponse{Email: u.Email, Message: "login successful"})
}

// Logout invalidates the session behind the cookie. Without a usable session
// this is a 400, matching the contract clients already handle.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookieName)
	if err != nil || token == "" {
		response.Error(c, http.StatusBadRequest, "no active session")
		return
	}
	claims, err := h.JWT.ParseSessionToken(token)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no active session")
		return
	}

	if err := h.Svc.Logout(c.Request.Context(), claims.UserID); err != nil {
		if errors.Is(err, application.ErrNoActiveSession) {
			response.Error(c, http.StatusBadRequest, "no active session")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", claims.UserID).Error("logout failed")
		}
		response.Error(c, http.StatusBadRequest, "logout failed")
		return
	}

	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "logout successful")
}
