package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
	"github.com/MikeMC777/dryfruits-storefront/internal/user"
)

type accounts interface {
	httpx.Authenticator
	displayNamer
	Register(ctx context.Context, in user.RegisterRequest) (*user.AuthResponse, error)
	Login(ctx context.Context, in user.LoginRequest) (*user.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

// registerHandler godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  user.RegisterRequest  true  "Account"
// @Success      201  {object}  user.AuthResponse
// @Failure      400  {object}  prod.HTTPError
// @Failure      409  {object}  prod.HTTPError
// @Router       /auth/register [post]
func registerHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.RegisterRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "Invalid request body."})
			return
		}
		out, err := svc.Register(c.Request.Context(), in)
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: err.Error()})
		case errors.Is(err, user.ErrAlreadyExist):
			c.JSON(http.StatusConflict, prod.HTTPError{Error: "An account with this email already exists"})
		case err != nil:
			httpx.Log(c).WithError(err).Error("[auth] register")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "An unexpected error occurred"})
		default:
			c.JSON(http.StatusCreated, out)
		}
	}
}

// loginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  user.LoginRequest  true  "Credentials"
// @Success      200  {object}  user.AuthResponse
// @Failure      400  {object}  prod.HTTPError
// @Failure      401  {object}  prod.HTTPError
// @Router       /auth/login [post]
func loginHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "Invalid request body."})
			return
		}
		out, err := svc.Login(c.Request.Context(), in)
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: err.Error()})
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, prod.HTTPError{Error: "Invalid email or password"})
		case err != nil:
			httpx.Log(c).WithError(err).Error("[auth] login")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "An unexpected error occurred"})
		default:
			c.JSON(http.StatusOK, out)
		}
	}
}

// logoutHandler godoc
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  prod.HTTPError
// @Router       /auth/logout [post]
func logoutHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), httpx.BearerToken(c)); err != nil {
			httpx.Log(c).WithError(err).Error("[auth] logout")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "An unexpected error occurred"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
