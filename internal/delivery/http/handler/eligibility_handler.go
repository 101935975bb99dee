package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/dto"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/middleware"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/response"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var staffRoles = []jwt.Role{jwt.RoleCoordinator, jwt.RoleManager, jwt.RoleCampusPOC}

type EligibilityHandler struct {
	uc usecase.EligibilityUsecase
}

func NewEligibilityHandler(uc usecase.EligibilityUsecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *EligibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/eligibility/estimate", middleware.RequireRole(staffRoles...), h.Estimate)
	grp.Get("/:job_id/eligibility", middleware.RequireRole(jwt.RoleStudent), h.ForStudent)
	grp.Get("/:job_id/eligible-students", middleware.RequireRole(staffRoles...), h.EligibleStudents)
	grp.Delete("/:job_id/eligibility/cache", middleware.RequireRole(jwt.RoleCoordinator, jwt.RoleManager), h.Invalidate)
}

func (h *EligibilityHandler) Estimate(c fiber.Ctx) error {
	var req dto.JobDraftRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	}

	est, err := h.uc.EstimateEligibleCount(c.Context(), req.ToJob())
	if err != nil {
		return mapEligibilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EstimateResponse{
		Eligible:   est.Eligible,
		Total:      est.Total,
		OpenForAll: est.OpenForAll,
	})
}

func (h *EligibilityHandler) ForStudent(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	res, err := h.uc.EvaluateForStudent(c.Context(), userID, jobID)
	if err != nil {
		return mapEligibilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentEligibilityResponse(jobID, res))
}

func (h *EligibilityHandler) EligibleStudents(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	params := usecase.ListEligibleParams{}
	if params.IncludeIneligible, err = boolQuery(c, "include_ineligible"); err != nil {
		return err
	}
	if params.Refresh, err = boolQuery(c, "refresh"); err != nil {
		return err
	}

	res, err := h.uc.ListEligibleStudents(c.Context(), jobID, params)
	if err != nil {
		return mapEligibilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEligibleStudentsResponse(jobID, res))
}

func (h *EligibilityHandler) Invalidate(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.InvalidateJob(c.Context(), jobID); err != nil {
		return mapEligibilityUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func jobIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	return id, nil
}

func boolQuery(c fiber.Ctx, key string) (bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}

func mapEligibilityUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student profile not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
}
