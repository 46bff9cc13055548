package inbound

import (
	"strconv"

	"github.com/shandysiswandi/formbite/internal/pkg/router"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
	"github.com/shandysiswandi/formbite/internal/testprep/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the test preparation form.
type HTTPEndpoint struct {
	uc uc
}

func (req TestPrepRequest) input() usecase.TestPrepInput {
	return usecase.TestPrepInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Tests:           entity.Tests(req.Tests),
		OtherTest:       req.OtherTest,
		NotSureYet:      req.NotSureYet,
		TargetTestDate:  req.TargetTestDate,
		TakenBefore:     req.TakenBefore,
		PreviousScore:   req.PreviousScore,
		TargetScore:     req.TargetScore,
		LookingFor:      entity.LookingFor(req.LookingFor),
		OtherLookingFor: req.OtherLookingFor,
		CoachingMode:    req.CoachingMode,
		AdditionalInfo:  req.AdditionalInfo,
	}
}

// Submit validates and stores a test preparation inquiry.
// @Summary Submit test preparation inquiry
// @Description Validates the form and stores it. Repeating an Idempotency-Key returns 409.
// @Tags TestPrep
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key for safe retries"
// @Param request body TestPrepRequest true "Test preparation form"
// @Success 201 {object} router.successResponse{data=SubmitResponse} "Stored"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Duplicate submission"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/testprep/inquiries [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req TestPrepRequest
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

// Validate checks a test preparation form without storing it.
// @Summary Validate test preparation inquiry
// @Tags TestPrep
// @Accept json
// @Produce json
// @Param request body TestPrepRequest true "Test preparation form"
// @Success 200 {object} router.successResponse{data=ValidateResponse} "Normalized form"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/testprep/inquiries/validate [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req TestPrepRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	rec, err := h.uc.Validate(r.Context(), req.input())
	if err != nil {
		return nil, err
	}

	return ValidateResponse{
		FullName:        rec.FullName,
		Email:           rec.Email,
		Phone:           rec.Phone,
		Tests:           TestsRequest(rec.Tests),
		OtherTest:       rec.OtherTest,
		NotSureYet:      rec.NotSureYet,
		TargetTestDate:  rec.TargetTestDate,
		TakenBefore:     rec.TakenBefore,
		PreviousScore:   rec.PreviousScore,
		TargetScore:     rec.TargetScore,
		LookingFor:      LookingForRequest(rec.LookingFor),
		OtherLookingFor: rec.OtherLookingFor,
		CoachingMode:    rec.CoachingMode.String(),
		AdditionalInfo:  rec.AdditionalInfo,
	}, nil
}

// GetByReference reports whether an inquiry with the reference exists.
// @Summary Test preparation inquiry status
// @Tags TestPrep
// @Produce json
// @Param reference path string true "Reference code, e.g. TPI-7HQ2MX9KRD"
// @Success 200 {object} router.successResponse{data=SubmissionResponse}
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/testprep/inquiries/{reference} [get]
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

// Options lists the choices of the test preparation form.
// @Summary Test preparation form options
// @Tags TestPrep
// @Produce json
// @Success 200 {object} router.successResponse{data=OptionsResponse}
// @Router /api/v1/testprep/options [get]
func (h *HTTPEndpoint) Options(r *router.Request) (any, error) {
	resp := h.uc.Options(r.Context())

	return OptionsResponse{
		Tests:         resp.Tests,
		LookingFor:    resp.LookingFor,
		CoachingModes: resp.CoachingModes,
		TakenBefore:   resp.TakenBefore,
	}, nil
}
