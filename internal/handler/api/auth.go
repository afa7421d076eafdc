package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	tokenTTL    time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
		tokenTTL:    ttl,
	}
}

// @Summary Customer login
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, cust, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token, h.tokenTTL)

	response := resdto.LoginResponse{
		AccessToken: token,
		Customer:    cust,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Customer logout
// @Description Logout current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless JWT: dropping the cookie is all the server can do.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current customer
// @Description Get current authenticated customer information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.CustomerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	cust, err := h.authUseCase.GetCurrentCustomer(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, cust)
}
