package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altiusfest/altius-api/internal/api/handler/v1/request"
	"github.com/altiusfest/altius-api/internal/api/handler/v1/response"
	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/service"
)

var errInvalidID = errors.New("invalid id")

type CollegeService interface {
	CreateCollege(ctx context.Context, college domain.College) (domain.College, error)
	ListColleges(ctx context.Context) ([]domain.College, error)
	Leaderboard(ctx context.Context) ([]domain.College, error)
	UpdateCollegePoint(ctx context.Context, id uint, point int) (domain.College, error)
	DeleteCollege(ctx context.Context, id uint) error
}

type CollegeHandler struct {
	svc CollegeService
}

func NewCollegeHandler(svc CollegeService) *CollegeHandler {
	return &CollegeHandler{
		svc: svc,
	}
}

// HandleCreateCollege godoc
// @Summary      Register a college
// @Tags         colleges
// @Produce      json
// @Param        request   body      request.CreateCollegeRequest true "request body"
// @Success      201      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /college [post]
func (h *CollegeHandler) HandleCreateCollege(ctx *gin.Context) {
	var req request.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateCollege(ctx.Request.Context(), domain.College{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrCollegeNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCollegeNameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCollege -> h.svc.CreateCollege -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Message{
		Message: fmt.Sprintf("college %q added successfully", created.Name),
	})
}

// HandleListColleges godoc
// @Summary      List colleges, ordered by name ascending
// @Tags         colleges
// @Produce      json
// @Success      200      {array}    domain.College
// @Failure      500      {object}   response.Err
// @Router       /college [get]
func (h *CollegeHandler) HandleListColleges(ctx *gin.Context) {
	colleges, err := h.svc.ListColleges(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListColleges -> h.svc.ListColleges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// HandleUpdateCollege godoc
// @Summary      Set a college's points
// @Tags         colleges
// @Produce      json
// @Param        id        path      int true "college ID"
// @Param        request   body      request.UpdateCollegeRequest true "request body"
// @Success      200      {object}   domain.College
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /college/{id} [put]
func (h *CollegeHandler) HandleUpdateCollege(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateCollegeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateCollegePoint(ctx.Request.Context(), id, *req.Points)
	if err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCollegeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCollege -> h.svc.UpdateCollegePoint -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCollege godoc
// @Summary      Delete a college
// @Tags         colleges
// @Produce      json
// @Param        id   path      int true "college ID"
// @Success      200      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /college/{id} [delete]
func (h *CollegeHandler) HandleDeleteCollege(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteCollege(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCollegeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCollege -> h.svc.DeleteCollege -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "college deleted successfully",
	})
}

func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, errInvalidID
	}

	return uint(id), nil
}
