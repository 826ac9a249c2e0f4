package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/app/services"
	"github.com/unibecas/sibeca/internal/middleware"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

// AuthController handles login, logout and session introspection. The session
// is a signed token carried in an HTTP-only cookie, so the page scripts never
// see it.
type AuthController struct {
	authService  *services.AuthService
	jwtService   *auth.JWTService
	cookieName   string
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, jwtService *auth.JWTService, cookieName string, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		jwtService:   jwtService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Login authenticates an account and opens a session
// @Summary Log in
// @Description Validates credentials and sets the HTTP-only session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Session opened"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Wrong credentials"
// @Failure 403 {object} dto.ErrorResponse "Account disabled"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.FormatBindingError(err))
		return
	}

	account, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, _, err := c.jwtService.GenerateSessionToken(account.ID, account.Email, account.FullName, string(account.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, int(c.jwtService.SessionDuration().Seconds()))

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User: &dto.SessionUser{
			ID:       account.ID,
			FullName: account.FullName,
			Email:    account.Email,
			Role:     string(account.Role),
		},
	})
}

// Session reports the current session user
// @Summary Current session
// @Description Returns the session user behind the cookie, or null without one
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session user or null"
// @Router /api/sesion [get]
func (c *AuthController) Session(ctx *gin.Context) {
	tokenString, err := ctx.Cookie(c.cookieName)
	if err != nil || tokenString == "" {
		ctx.JSON(http.StatusOK, dto.SessionResponse{User: nil})
		return
	}

	claims, err := c.jwtService.ValidateSessionToken(tokenString)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{User: nil})
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		User: &dto.SessionUser{
			ID:       claims.AccountID,
			FullName: claims.FullName,
			Email:    claims.Email,
			Role:     claims.Role,
		},
	})
}

// Logout closes the session
// @Summary Log out
// @Description Expires the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Session closed"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(""))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, token, maxAge, "/", "", c.cookieSecure, true)
}
