package usecase

import (
	"bytes"
	"context"
	"embed"
	"text/template"
	"time"

	"github.com/shandysiswandi/formbite/internal/pkg/clock"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/mail"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

//go:embed template/*.txt
var templateFS embed.FS

var templates = template.Must(template.New("email").Option("missingkey=zero").ParseFS(templateFS, "template/*.txt"))

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	cfg       config.Config
	clock     clock.Clocker
	validator validator.Validator
	repoMail  repoMail
	ins       instrument.Instrumentation
}

type Dependency struct {
	Config     config.Config
	Clock      clock.Clocker
	Validator  validator.Validator
	RepoMail   repoMail
	Instrument instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	return &Usecase{
		cfg:       dep.Config,
		clock:     dep.Clock,
		validator: dep.Validator,
		repoMail:  dep.RepoMail,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) renderTemplate(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Usecase) baseEmailTemplateData() map[string]any {
	return map[string]any{
		"support_email":   s.cfg.GetString("modules.notification.support_email"),
		"company_name":    s.cfg.GetString("modules.notification.company_name"),
		"company_address": s.cfg.GetString("modules.notification.company_address"),
		"year":            s.clock.Now().Format("2006"),
	}
}

// submittedAt formats t for an email, falling back to now when the event had no time.
func (s *Usecase) submittedAt(t time.Time) string {
	if t.IsZero() {
		t = s.clock.Now()
	}
	return t.UTC().Format("2 January 2006 15:04 MST")
}
