package inbound

import (
	"strconv"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
	"github.com/shandysiswandi/formbite/internal/accommodation/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the accommodation form.
type HTTPEndpoint struct {
	uc uc
}

func (req AccommodationRequest) input() usecase.AccommodationInput {
	return usecase.AccommodationInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Contact:           req.Contact,
		UniversityCity:    req.UniversityCity,
		MoveInMonth:       req.MoveInMonth,
		MoveInYear:        req.MoveInYear,
		Budget:            req.Budget,
		AccommodationType: req.AccommodationType,
		Dependents:        req.Dependents,
	}
}

// Submit validates and stores an accommodation request.
// @Summary Submit accommodation request
// @Description Validates the form and stores it. Repeating an Idempotency-Key returns 409.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key for safe retries"
// @Param request body AccommodationRequest true "Accommodation form"
// @Success 201 {object} router.successResponse{data=SubmitResponse} "Stored"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Duplicate submission"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/accommodation/requests [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req AccommodationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		IdempotencyKey: r.GetHeader(HeaderIdempotencyKey),
		Form:           req.input(),
	})
	if err != nil {
		return nil, err
	}

	return SubmitResponse{
		ID:        strconv.FormatInt(resp.ID, 10),
		Reference: resp.Reference,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// Validate checks an accommodation form without storing it.
// @Summary Validate accommodation request
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body AccommodationRequest true "Accommodation form"
// @Success 200 {object} router.successResponse{data=ValidateResponse} "Normalized form"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/accommodation/requests/validate [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req AccommodationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	rec, err := h.uc.Validate(r.Context(), req.input())
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(rec.AccommodationType))
	for _, t := range rec.AccommodationType {
		types = append(types, t.String())
	}

	return ValidateResponse{
		FullName:          rec.FullName,
		Email:             rec.Email,
		Contact:           rec.Contact,
		UniversityCity:    rec.UniversityCity,
		MoveInMonth:       rec.MoveInMonth,
		MoveInYear:        rec.MoveInYear,
		Budget:            rec.Budget.String(),
		AccommodationType: types,
		Dependents:        rec.Dependents,
	}, nil
}

// GetByReference reports whether a submission with the reference exists.
// @Summary Accommodation request status
// @Tags Accommodation
// @Produce json
// @Param reference path string true "Reference code, e.g. ACC-3F9K2QX7PL"
// @Success 200 {object} router.successResponse{data=SubmissionResponse}
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/accommodation/requests/{reference} [get]
func (h *HTTPEndpoint) GetByReference(r *router.Request) (any, error) {
	resp, err := h.uc.GetByReference(r.Context(), usecase.GetByReferenceInput{
		Reference: r.GetParam("reference"),
	})
	if err != nil {
		return nil, err
	}

	return SubmissionResponse{
		Reference: resp.Reference,
		Status:    entity.StatusReceived,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// Options lists the choices of the accommodation form.
// @Summary Accommodation form options
// @Tags Accommodation
// @Produce json
// @Success 200 {object} router.successResponse{data=OptionsResponse}
// @Router /api/v1/accommodation/options [get]
func (h *HTTPEndpoint) Options(r *router.Request) (any, error) {
	resp := h.uc.Options(r.Context())

	return OptionsResponse{
		Budgets:               resp.Budgets,
		AccommodationTypes:    resp.AccommodationTypes,
		Dependents:            resp.Dependents,
		MaxAccommodationTypes: resp.MaxAccommodationTypes,
	}, nil
}
