package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altiusfest/altius-api/internal/api/handler/v1/request"
	"github.com/altiusfest/altius-api/internal/api/handler/v1/response"
	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/service"
)

type WinnerService interface {
	RecordWinner(ctx context.Context, username string, winner domain.Winner) (domain.Winner, error)
	ListWinnersByUsername(ctx context.Context, username string) ([]domain.Winner, error)
	DeleteWinner(ctx context.Context, id uint) error
}

type DashboardHandler struct {
	winnerSvc  WinnerService
	collegeSvc CollegeService
}

func NewDashboardHandler(winnerSvc WinnerService, collegeSvc CollegeService) *DashboardHandler {
	return &DashboardHandler{
		winnerSvc:  winnerSvc,
		collegeSvc: collegeSvc,
	}
}

// HandleRecordWinner godoc
// @Summary      Record a participant placement
// @Tags         dashboard
// @Produce      json
// @Param        request   body      request.CreateWinnerRequest true "request body"
// @Success      201      {object}   domain.Winner
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /dashboard [post]
func (h *DashboardHandler) HandleRecordWinner(ctx *gin.Context) {
	var req request.CreateWinnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.winnerSvc.RecordWinner(ctx.Request.Context(), req.Username, domain.Winner{
		Name:       req.Name,
		Department: req.Department,
		Semester:   req.Semester,
		Event:      req.Event,
		Place:      req.Place,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleRecordWinner -> h.winnerSvc.RecordWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListWinners godoc
// @Summary      List placements recorded by one organizer
// @Tags         dashboard
// @Produce      json
// @Param        username   path      string true "organizer username"
// @Success      200      {array}    domain.Winner
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /dashboard/{username} [get]
func (h *DashboardHandler) HandleListWinners(ctx *gin.Context) {
	username := ctx.Param("username")

	winners, err := h.winnerSvc.ListWinnersByUsername(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleListWinners -> h.winnerSvc.ListWinnersByUsername -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, winners)
}

// HandleDeleteWinner godoc
// @Summary      Delete a recorded placement
// @Tags         dashboard
// @Produce      json
// @Param        id   path      int true "winner ID"
// @Success      200      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /winner/{id} [delete]
func (h *DashboardHandler) HandleDeleteWinner(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.winnerSvc.DeleteWinner(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWinnerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrWinnerNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteWinner -> h.winnerSvc.DeleteWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "winner deleted successfully",
	})
}

// HandleLeaderboard godoc
// @Summary      College leaderboard, ordered by points descending
// @Tags         dashboard
// @Produce      json
// @Success      200      {array}    domain.College
// @Failure      500      {object}   response.Err
// @Router       /dashboard [get]
func (h *DashboardHandler) HandleLeaderboard(ctx *gin.Context) {
	colleges, err := h.collegeSvc.Leaderboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleLeaderboard -> h.collegeSvc.Leaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, colleges)
}
