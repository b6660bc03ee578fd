package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
)

// Occurrence is the authoritative store of committed occurrences. Appended
// rows become visible to subsequent ListOccurrences calls before the next
// conflict check.
type Occurrence struct {
	DB *bun.DB
}

func NewOccurrence(db *bun.DB) *Occurrence {
	return &Occurrence{DB: db}
}

func (r *Occurrence) ListOccurrences(ctx context.Context, filter types.OccurrenceFilter) ([]*model.Occurrence, error) {
	var occurrences []*model.Occurrence
	q := r.DB.NewSelect().
		Model(&occurrences)

	if filter.VenueID != 0 {
		q = q.Where("venue_id = ?", filter.VenueID)
	}
	if filter.FieldID != 0 {
		q = q.Where("field_id = ?", filter.FieldID)
	}
	if filter.TeamID != 0 {
		q = q.Where("team_id = ?", filter.TeamID)
	}
	if filter.StartDate != "" {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("date <= ?", filter.EndDate)
	}

	err := q.
		Order("date ASC").
		Order("start_time ASC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return occurrences, nil
}

// AppendOccurrences writes the batch inside a single transaction, so a
// failure leaves the committed set untouched. Returns the number of rows
// written, which with this store is either all or none.
func (r *Occurrence) AppendOccurrences(ctx context.Context, batch []*model.Occurrence) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	err := r.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&batch).
			Exec(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return len(batch), nil
}
