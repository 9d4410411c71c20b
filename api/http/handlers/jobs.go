package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboost/api/http/presenter"
	"github.com/artem13815/resumeboost/pkg/job"
	"github.com/artem13815/resumeboost/pkg/logging"
	"github.com/artem13815/resumeboost/pkg/resume"
	"github.com/artem13815/resumeboost/pkg/security/bearer"
)

type JobsHandler struct {
	uc job.UseCase
}

func NewJobsHandler(uc job.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

// Recommendations lists job postings. The optional resume score body is
// accepted for forward compatibility and does not affect the result.
// @Summary Job recommendations
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body resume.Score false "resume score"
// @Success 200 {array} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/jobs/recommendations [post]
func (h *JobsHandler) Recommendations(c *fiber.Ctx) error {
	var score *resume.Score
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &score); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	jobs, err := h.uc.List(c.UserContext(), score)
	if err != nil {
		logging.WithError(err).Error("list jobs failed")
		return presenter.Error(c, http.StatusInternalServerError, "failed to load jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// Apply acknowledges an application to a job. Authenticated callers also get
// the application recorded.
// @Summary Apply to a job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 200 {object} job.ApplyResult
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/jobs/{id}/apply [post]
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	var userID string
	if user, ok := bearer.UserFrom(c); ok {
		userID = user.ID
	}
	res, err := h.uc.Apply(c.UserContext(), c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		logging.WithError(err).Error("apply failed", "job_id", c.Params("id"))
		return presenter.Error(c, http.StatusInternalServerError, "failed to apply")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Applications lists the caller's recorded applications, newest first.
// @Summary My applications
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Application
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /api/jobs/applications [get]
func (h *JobsHandler) Applications(c *fiber.Ctx) error {
	user, ok := bearer.UserFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid token")
	}
	apps, err := h.uc.ListApplications(c.UserContext(), user.ID)
	if err != nil {
		logging.WithUser(user.ID).Error("list applications failed", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to load applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}
