package notification

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/notification/inbound"
	"github.com/shandysiswandi/formbite/internal/notification/outbound/email"
	"github.com/shandysiswandi/formbite/internal/notification/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/clock"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/goroutine"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/mail"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.NewNotification(usecase.Dependency{
		Config:     dep.Config,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		RepoMail:   email.New(dep.Mail, dep.Instrument),
		Instrument: dep.Instrument,
	})

	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
