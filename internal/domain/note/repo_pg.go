package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const noteCols = "id, patient_id, title, content, category, created_at, updated_at"

type pgRepo struct {
	pool *pgxpool.Pool
}

// NewRepo returns a Repository backed by PostgreSQL.
func NewRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

func scanNote(row pgx.Row) (*Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.PatientID, &n.Title, &n.Content, &n.Category, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *pgRepo) List(ctx context.Context, patientID *int64) ([]*Note, error) {
	query := "SELECT " + noteCols + " FROM notes"
	var args []interface{}
	if patientID != nil {
		query += " WHERE patient_id = $1"
		args = append(args, *patientID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id int64) (*Note, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+noteCols+" FROM notes WHERE id = $1", id)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return n, nil
}

func (r *pgRepo) Create(ctx context.Context, in *CreateInput) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (patient_id, title, content, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		*in.PatientID, *in.Title, *in.Content, in.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
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
	if in.Category != nil {
		add("category", *in.Category)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE notes SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update note %d: %w", id, err)
	}
	return nil
}

func (r *pgRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
