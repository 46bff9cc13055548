package db

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
)

type document struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Contact           string   `json:"contact"`
	UniversityCity    string   `json:"universityCity"`
	MoveInMonth       string   `json:"moveInMonth"`
	MoveInYear        string   `json:"moveInYear"`
	Budget            string   `json:"budget"`
	AccommodationType []string `json:"accommodationType"`
	Dependents        string   `json:"dependents"`
}

func newDocument(req entity.AccommodationRequest) document {
	types := make([]string, 0, len(req.AccommodationType))
	for _, t := range req.AccommodationType {
		types = append(types, t.String())
	}

	return document{
		FullName:          req.FullName,
		Email:             req.Email,
		Contact:           req.Contact,
		UniversityCity:    req.UniversityCity,
		MoveInMonth:       req.MoveInMonth,
		MoveInYear:        req.MoveInYear,
		Budget:            req.Budget.String(),
		AccommodationType: types,
		Dependents:        req.Dependents,
	}
}

const queryInsertAccommodationRequest = `
INSERT INTO accommodation_requests (id, reference, document)
VALUES ($1, $2, $3)
RETURNING id, reference, created_at, updated_at`

func (s *DB) CreateAccommodationRequest(ctx context.Context, in entity.NewAccommodationRequest) (_ *entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "CreateAccommodationRequest")
	defer func() { s.endSpan(span, err) }()

	doc, err := json.Marshal(newDocument(in.Request))
	if err != nil {
		return nil, err
	}

	var sub entity.Submission
	err = s.conn.QueryRow(ctx, queryInsertAccommodationRequest, in.ID, in.Reference, doc).
		Scan(&sub.ID, &sub.Reference, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &sub, nil
}
