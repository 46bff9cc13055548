package inbound

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
	"github.com/shandysiswandi/formbite/internal/accommodation/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/router"
)

type uc interface {
	Validate(ctx context.Context, in usecase.AccommodationInput) (*entity.AccommodationRequest, error)
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
	GetByReference(ctx context.Context, in usecase.GetByReferenceInput) (*usecase.GetByReferenceOutput, error)
	Options(ctx context.Context) *usecase.OptionsOutput
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/accommodation/options", end.Options)
	r.POST("/api/v1/accommodation/requests", end.Submit)
	r.POST("/api/v1/accommodation/requests/validate", end.Validate)
	r.GET("/api/v1/accommodation/requests/:reference", end.GetByReference)
}
