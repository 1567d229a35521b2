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

type DepartmentService interface {
	CreateDepartments(ctx context.Context, departments []domain.Department) error
	UpdateDepartmentPoint(ctx context.Context, id uint, point int) (domain.Department, error)
	DeleteDepartment(ctx context.Context, id uint) error
}

type ScoreService interface {
	RecomputeDepartmentPoints(ctx context.Context) ([]domain.Department, error)
}

type DepartmentHandler struct {
	svc      DepartmentService
	scoreSvc ScoreService
}

func NewDepartmentHandler(svc DepartmentService, scoreSvc ScoreService) *DepartmentHandler {
	return &DepartmentHandler{
		svc:      svc,
		scoreSvc: scoreSvc,
	}
}

// HandleCreateDepartments godoc
// @Summary      Register departments in bulk
// @Tags         departments
// @Produce      json
// @Param        request   body      request.CreateDepartmentsRequest true "request body"
// @Success      201      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /department [post]
func (h *DepartmentHandler) HandleCreateDepartments(ctx *gin.Context) {
	var req request.CreateDepartmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	departments := make([]domain.Department, 0, len(req))
	for _, d := range req {
		departments = append(departments, domain.Department{
			Name:      d.Name,
			ImagePath: d.ImagePath,
		})
	}

	if err := h.svc.CreateDepartments(ctx.Request.Context(), departments); err != nil {
		if errors.Is(err, service.ErrDepartmentNameExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateDepartments -> h.svc.CreateDepartments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Message{
		Message: "departments added successfully",
	})
}

// HandleListDepartments godoc
// @Summary      List departments with freshly recomputed points
// @Description  Recomputes every department total from the winner log
// @Description  before returning the list, so totals are always in
// @Description  sync with recorded placements.
// @Tags         departments
// @Produce      json
// @Success      200      {array}    domain.Department
// @Failure      500      {object}   response.Err
// @Router       /department [get]
func (h *DepartmentHandler) HandleListDepartments(ctx *gin.Context) {
	departments, err := h.scoreSvc.RecomputeDepartmentPoints(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListDepartments -> h.scoreSvc.RecomputeDepartmentPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// HandleUpdateDepartment godoc
// @Summary      Set a department's points
// @Tags         departments
// @Produce      json
// @Param        id        path      int true "department ID"
// @Param        request   body      request.UpdateDepartmentRequest true "request body"
// @Success      200      {object}   domain.Department
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /department/{id} [put]
func (h *DepartmentHandler) HandleUpdateDepartment(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateDepartmentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateDepartmentPoint(ctx.Request.Context(), id, *req.Points)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDepartmentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateDepartment -> h.svc.UpdateDepartmentPoint -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteDepartment godoc
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Param        id   path      int true "department ID"
// @Success      200      {object}   response.Message
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /department/{id} [delete]
func (h *DepartmentHandler) HandleDeleteDepartment(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteDepartment(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDepartmentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteDepartment -> h.svc.DeleteDepartment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "department deleted successfully",
	})
}
