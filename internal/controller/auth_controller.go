package controller

import (
	"errors"
	"gradebook_backend/internal/middleware"
	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

const loginFailedMessage = "Username and password do not match."

type AuthController struct {
	AuthService *service.AuthService
	CookieName  string
	IsRelease   bool // sets the Secure flag on the session cookie
}

func NewAuthController(authService *service.AuthService, cookieName string, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		CookieName:  cookieName,
		IsRelease:   isRelease,
	}
}

// LoginView backs the login page.
// swagger:model LoginView
type LoginView struct {
	Next  string `json:"next"`
	Error string `json:"error,omitempty"`
}

// LoginRequest accepts form or JSON bodies.
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Next     string `form:"next" json:"next"`
}

// LoginResponse is returned instead of a redirect to JSON clients.
// swagger:model LoginResponse
type LoginResponse struct {
	Token string `json:"token"`
	Next  string `json:"next"`
}

// LoginPage godoc
// @Summary Login page
// @Description Returns where the client goes after a successful login
// @Tags auth
// @Produce json
// @Param next query string false "Redirect target" default(/profile)
// @Success 200 {object} util.Response{data=LoginView}
// @Router /login [get]
func (c *AuthController) LoginPage(ctx *gin.Context) {
	util.Success(ctx, LoginView{Next: ctx.DefaultQuery("next", util.DefaultLoginNext)})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials, starts a session and redirects to next. next is followed as given.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=LoginResponse} "JSON clients"
// @Success 302 "Redirect to next"
// @Failure 401 {object} util.Response{data=LoginView}
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Next == "" {
		req.Next = util.DefaultLoginNext
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) || errors.Is(err, util.ErrAccountDisabled) {
			ctx.JSON(http.StatusUnauthorized, util.Response{
				Code:    http.StatusUnauthorized,
				Message: loginFailedMessage,
				Data:    LoginView{Next: req.Next, Error: loginFailedMessage},
			})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, result.Token, maxAge, "/", "", c.IsRelease, true)

	if util.WantsJSON(ctx) {
		util.Success(ctx, LoginResponse{Token: result.Token, Next: req.Next})
		return
	}
	// next is not validated against the host; any URL is followed.
	ctx.Redirect(http.StatusFound, req.Next)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session and redirects to the login page
// @Tags auth
// @Success 302 "Redirect to /profile/login"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token := middleware.TokenFromRequest(ctx, c.CookieName)
	if err := c.AuthService.Logout(ctx.Request.Context(), token); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.IsRelease, true)

	if util.WantsJSON(ctx) {
		util.Success(ctx, LoginView{Next: util.LoginPath})
		return
	}
	ctx.Redirect(http.StatusFound, util.LoginPath)
}
