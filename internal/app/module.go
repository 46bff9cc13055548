package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/formbite/internal/accommodation"
	"github.com/shandysiswandi/formbite/internal/notification"
	"github.com/shandysiswandi/formbite/internal/testprep"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.accommodation.enabled") {
		if err := accommodation.New(accommodation.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module accommodation", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.testprep.enabled") {
		if err := testprep.New(testprep.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module testprep", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
