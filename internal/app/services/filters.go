package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/pkg/apperrors"
	"github.com/kaan/internlink/internal/pkg/helpers"
)

// ParseFilterSettings converts the query-parameter filter request into the
// engine's filter settings, validating every provided value
func ParseFilterSettings(req *dto.InternshipFilterRequest) (*models.FilterSettings, error) {
	filter := &models.FilterSettings{ShowOnlyApplied: req.AppliedOnly}

	if req.Status != "" {
		status := models.InternshipStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		switch status {
		case models.InternshipPending, models.InternshipApproved, models.InternshipRejected, models.InternshipFilled:
			filter.Status = &status
		default:
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown internship status %q", req.Status))
		}
	}

	if req.Major != "" {
		major := models.MajorFromString(req.Major)
		filter.Major = &major
	}

	if req.Level != "" {
		level := models.InternshipLevel(strings.ToUpper(strings.TrimSpace(req.Level)))
		if !level.IsValid() {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown internship level %q", req.Level))
		}
		filter.Level = &level
	}

	if req.ClosingDateFrom != "" {
		from, err := helpers.ParseDate(req.ClosingDateFrom)
		if err != nil {
			return nil, apperrors.NewBadRequestError("closingDateFrom must use the 2006-01-02 format")
		}
		filter.ClosingDateFrom = &from
	}

	if req.ClosingDateTo != "" {
		to, err := helpers.ParseDate(req.ClosingDateTo)
		if err != nil {
			return nil, apperrors.NewBadRequestError("closingDateTo must use the 2006-01-02 format")
		}
		filter.ClosingDateTo = &to
	}

	if req.MinSlots != "" {
		minSlots, err := strconv.Atoi(req.MinSlots)
		if err != nil || minSlots < 0 {
			return nil, apperrors.NewBadRequestError("minSlots must be a non-negative number")
		}
		filter.MinAvailableSlots = &minSlots
	}

	return filter, nil
}
