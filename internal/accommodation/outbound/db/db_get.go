package db

import (
	"context"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
)

const querySubmissionByReference = `
SELECT id, reference, created_at, updated_at
FROM accommodation_requests
WHERE reference = $1`

func (s *DB) GetSubmissionByReference(ctx context.Context, reference string) (_ *entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "GetSubmissionByReference")
	defer func() { s.endSpan(span, err) }()

	var sub entity.Submission
	err = s.conn.QueryRow(ctx, querySubmissionByReference, reference).
		Scan(&sub.ID, &sub.Reference, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &sub, nil
}
