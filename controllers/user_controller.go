package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/middleware"
	"github.com/digitalstore/digitalstore-api/services"
)

type UserController struct {
	accounts *services.AccountService
	log      *zap.Logger
}

func NewUserController(accounts *services.AccountService, log *zap.Logger) *UserController {
	return &UserController{accounts: accounts, log: log}
}

// CreateUser godoc
// @Summary Register the caller
// @Description Creates the user, customer and profile records from the identity provider's /userinfo
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 201 {object} DataResponse{data=services.Account}
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/users [post]
func (h *UserController) CreateUser(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	accessToken, err := middleware.GetAccessToken(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "Access token not found")
		return
	}

	acc, err := h.accounts.Register(c.Request.Context(), sub, accessToken)
	if err != nil {
		if isServiceError(err) {
			respondServiceError(c, h.log, err)
			return
		}
		h.log.Warn("registration failed", zap.String("auth0_id", sub), zap.Error(err))
		respondError(c, http.StatusBadGateway, "AUTH0_ERROR", "Failed to fetch user information from Auth0")
		return
	}
	respondData(c, http.StatusCreated, acc)
}

// GetMyProfile godoc
// @Summary My profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse{data=services.Account}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserController) GetMyProfile(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}
	acc, err := h.accounts.GetAccount(c.Request.Context(), sub)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, acc)
}

// UpdateMyProfile godoc
// @Summary Update my profile and shipping data
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body services.UpdateAccountInput true "Fields to change"
// @Success 200 {object} DataResponse{data=services.Account}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me [put]
func (h *UserController) UpdateMyProfile(c *gin.Context) {
	sub, ok := subject(c)
	if !ok {
		return
	}

	var req services.UpdateAccountInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	acc, err := h.accounts.UpdateAccount(c.Request.Context(), sub, req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, acc)
}

// isServiceError reports whether err maps onto a known envelope code
func isServiceError(err error) bool {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			return true
		}
	}
	return errors.Is(err, services.ErrInvalidInput)
}
