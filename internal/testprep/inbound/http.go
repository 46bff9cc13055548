package inbound

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/pkg/router"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
	"github.com/shandysiswandi/formbite/internal/testprep/usecase"
)

type uc interface {
	Validate(ctx context.Context, in usecase.TestPrepInput) (*entity.TestPrepInquiry, error)
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
	GetByReference(ctx context.Context, in usecase.GetByReferenceInput) (*usecase.GetByReferenceOutput, error)
	Options(ctx context.Context) *usecase.OptionsOutput
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/testprep/options", end.Options)
	r.POST("/api/v1/testprep/inquiries", end.Submit)
	r.POST("/api/v1/testprep/inquiries/validate", end.Validate)
	r.GET("/api/v1/testprep/inquiries/:reference", end.GetByReference)
}
