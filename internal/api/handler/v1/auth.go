package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altiusfest/altius-api/internal/api/handler/v1/request"
	"github.com/altiusfest/altius-api/internal/api/handler/v1/response"
	"github.com/altiusfest/altius-api/internal/config"
	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/pkg/jwthelper"
	"github.com/altiusfest/altius-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	StoreRefreshToken(ctx context.Context, userID uint, token string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new organizer account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))

			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	pair, err := h.issueTokens(ctx, user)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.AuthResponse{
		Message:      "user registered successfully",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Username:     user.Username,
	})
}

// HandleLogin godoc
// @Summary      Login an organizer
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	pair, err := h.issueTokens(ctx, user)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.AuthResponse{
		Message:      "login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Username:     user.Username,
	})
}

// issueTokens signs a fresh token pair and rotates the stored refresh
// token, invalidating any prior session.
func (h *AuthHandler) issueTokens(ctx *gin.Context, user domain.User) (jwthelper.TokenPair, error) {
	pair, err := jwthelper.GenerateTokenPair([]byte(h.conf.JWTSigningKey), user.ID, user.Username)
	if err != nil {
		return jwthelper.TokenPair{}, fmt.Errorf("jwthelper.GenerateTokenPair -> %w", err)
	}

	if err = h.svc.StoreRefreshToken(ctx.Request.Context(), user.ID, pair.RefreshToken); err != nil {
		return jwthelper.TokenPair{}, fmt.Errorf("h.svc.StoreRefreshToken -> %w", err)
	}

	return pair, nil
}
