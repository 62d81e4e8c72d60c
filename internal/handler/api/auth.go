package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/cookie"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds    commands.AuthCommands
	users   queries.UserQueries
	cookies config.CookieConfig
	jwt     config.JWTConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:    cmds,
		users:   users,
		cookies: cfg.Cookie,
		jwt:     cfg.JWT,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.setTokens(c, result.TokenPair)

	vendorID, hasVendor := result.Principal.VendorID()
	user := &resdto.UserResponse{
		ID:    result.Principal.UserID(),
		Email: req.Email,
		Role:  result.Principal.Role().String(),
	}
	if hasVendor {
		user.VendorID = &vendorID
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err)
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.setTokens(c, pair)
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken})
}

// @Summary Register vendor
// @Description Create a vendor account and its vendor profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterVendorRequest true "Vendor registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.RegisterVendor(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		UserID:   result.UserID,
		VendorID: result.VendorID,
	})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortWithUseCaseError(c, commands.ErrTokenValidation)
		return
	}

	user, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(user))
}

func (h *AuthHandler) setTokens(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken, h.jwt.AccessDuration, h.jwt.RefreshDuration)
}
