package accommodation

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/formbite/internal/accommodation/inbound"
	"github.com/shandysiswandi/formbite/internal/accommodation/outbound/db"
	"github.com/shandysiswandi/formbite/internal/accommodation/outbound/mq"
	"github.com/shandysiswandi/formbite/internal/accommodation/usecase"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/pkg/router"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccommodation := db.NewDB(dep.DBConn, dep.Instrument)
	if dep.Config.GetBool("database.ensure_schema") {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := dbAccommodation.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAccommodation,
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		UID:           dep.UID,
		Reference:     uid.NewNanoID("ACC", dep.Config.GetInt("modules.accommodation.reference_size")),
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
