package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepo creates a PostgreSQL-backed patient repository.
func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, first_name, last_name, date_of_birth, gender, email, phone, address, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Email, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, in *CreateInput) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, date_of_birth, gender, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.FirstName, in.LastName, in.DateOfBirth, in.Gender, in.Email, in.Phone, in.Address,
	).Scan(&id)
	return id, err
}

// Update builds the SET clause only from supplied fields and refreshes
// updated_at. Callers must not pass an empty input.
func (r *repoPG) Update(ctx context.Context, id int64, in *UpdateInput) error {
	var set []string
	args := []interface{}{id}
	add := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.FirstName != nil {
		add("first_name", *in.FirstName)
	}
	if in.LastName != nil {
		add("last_name", *in.LastName)
	}
	if in.DateOfBirth != nil {
		add("date_of_birth", *in.DateOfBirth)
	}
	if in.Gender != nil {
		add("gender", *in.Gender)
	}
	if in.Email != nil {
		add("email", *in.Email)
	}
	if in.Phone != nil {
		add("phone", *in.Phone)
	}
	if in.Address != nil {
		add("address", *in.Address)
	}

	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE patients SET %s WHERE id = $1`, strings.Join(set, ", "))
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
