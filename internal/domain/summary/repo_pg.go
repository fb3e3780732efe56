package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const summaryCols = "id, patient_id, title, content, date_from, date_to, created_at, updated_at"

type pgRepo struct {
	pool *pgxpool.Pool
}

// NewRepo returns a Repository backed by PostgreSQL.
func NewRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func scanSummary(row pgx.Row) (*Summary, error) {
	var s Summary
	err := row.Scan(&s.ID, &s.PatientID, &s.Title, &s.Content, &s.DateFrom, &s.DateTo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *pgRepo) List(ctx context.Context, patientID *int64) ([]*Summary, error) {
	query := "SELECT " + summaryCols + " FROM summaries"
	var args []interface{}
	if patientID != nil {
		query += " WHERE patient_id = $1"
		args = append(args, *patientID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Summary, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+summaryCols+" FROM summaries WHERE id = $1", id)
	s, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary %d: %w", id, err)
	}
	return s, nil
}

func (r *pgRepo) Create(ctx context.Context, in *CreateInput) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO summaries (patient_id, title, content, date_from, date_to)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		*in.PatientID, *in.Title, *in.Content, in.DateFrom, in.DateTo,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert summary: %w", err)
	}
	return id, nil
}

func (r *pgRepo) Update(ctx context.Context, id int64, in *UpdateInput) error {
	var sets []string
	var args []interface{}

	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Content != nil {
		add("content", *in.Content)
	}
	if in.DateFrom != nil {
		add("date_from", *in.DateFrom)
	}
	if in.DateTo != nil {
		add("date_to", *in.DateTo)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE summaries SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update summary %d: %w", id, err)
	}
	return nil
}

func (r *pgRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM summaries WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete summary %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
