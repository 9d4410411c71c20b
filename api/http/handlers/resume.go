package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboost/api/http/presenter"
	"github.com/artem13815/resumeboost/pkg/resume"
)

type ResumeHandler struct {
	scorer resume.Scorer
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(scorer resume.Scorer, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumeHandler{scorer: scorer, maxBytes: maxBytes}
}

// Analyze scores an uploaded resume.
// @Summary Analyze resume
// @Description Accepts any resume file and returns category scores with improvement suggestions.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file"
// @Success 200 {object} resume.Score
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, h.scorer.Analyze(data))
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
