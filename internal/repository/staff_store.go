package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-directory/internal/directory"
	"github.com/spec-kit/staff-directory/internal/domain"
)

// StaffStore is the Postgres-backed implementation of the directory store
// boundary over the staff table.
type StaffStore struct {
	pool *pgxpool.Pool
}

// NewStaffStore instantiates the store.
func NewStaffStore(pool *pgxpool.Pool) *StaffStore {
	return &StaffStore{pool: pool}
}

const staffColumns = "id, name, position, department, experience, qualification, email, phone, image, description, category, display_order"

// ListByCategory fetches every record in a category. No ordering is
// requested from the server; display order is computed client-side.
func (s *StaffStore) ListByCategory(ctx context.Context, category domain.Category) ([]domain.StaffRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM staff WHERE category=$1", staffColumns)

	rows, err := s.pool.Query(ctx, query, category)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var result []domain.StaffRecord
	for rows.Next() {
		var rec domain.StaffRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Position,
			&rec.Department,
			&rec.Experience,
			&rec.Qualification,
			&rec.Email,
			&rec.Phone,
			&rec.Image,
			&rec.Description,
			&rec.Category,
			&rec.DisplayOrder,
		); err != nil {
			return nil, storeError(err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// Insert stores a new record and returns it with the server-assigned
// identifier.
func (s *StaffStore) Insert(ctx context.Context, record domain.StaffRecord) (domain.StaffRecord, error) {
	const query = `
        INSERT INTO staff (name, position, department, experience, qualification, email, phone, image, description, category, display_order)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id`

	if err := s.pool.QueryRow(ctx, query,
		record.Name,
		record.Position,
		record.Department,
		record.Experience,
		record.Qualification,
		record.Email,
		record.Phone,
		record.Image,
		record.Description,
		record.Category,
		record.DisplayOrder,
	).Scan(&record.ID); err != nil {
		return domain.StaffRecord{}, storeError(err)
	}
	return record, nil
}

// Update applies a partial attribute set to one row.
func (s *StaffStore) Update(ctx context.Context, id string, changes domain.StaffChanges) error {
	sets := []string{}
	args := []any{}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if changes.Name != nil {
		set("name", *changes.Name)
	}
	if changes.Position != nil {
		set("position", *changes.Position)
	}
	if changes.Department != nil {
		set("department", *changes.Department)
	}
	if changes.Experience != nil {
		set("experience", *changes.Experience)
	}
	if changes.Qualification != nil {
		set("qualification", *changes.Qualification)
	}
	if changes.Email != nil {
		set("email", *changes.Email)
	}
	if changes.Phone != nil {
		set("phone", *changes.Phone)
	}
	if changes.Image != nil {
		set("image", *changes.Image)
	}
	if changes.Description != nil {
		set("description", *changes.Description)
	}
	if changes.DisplayOrder != nil {
		set("display_order", *changes.DisplayOrder)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE staff SET %s, updated_at=NOW() WHERE id=$%d",
		strings.Join(sets, ", "), len(args))

	cmd, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return storeError(err)
	}
	if cmd.RowsAffected() == 0 {
		return &directory.Error{Kind: directory.KindRemoteFailure, Message: "staff member not found"}
	}
	return nil
}

// Delete removes the matching row. Deleting an already-absent row is not an
// error; the directory resolves missing ids against its local listing.
func (s *StaffStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM staff WHERE id=$1`
	if _, err := s.pool.Exec(ctx, query, id); err != nil {
		return storeError(err)
	}
	return nil
}

// storeError converts pgx failures into the structured error shape the
// directory surfaces: SQLSTATE as the provider code, server detail text
// preserved.
func storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &directory.Error{
			Kind:    directory.KindRemoteFailure,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Code:    pgErr.Code,
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &directory.Error{Kind: directory.KindRemoteFailure, Message: "staff member not found"}
	}
	return &directory.Error{Kind: directory.KindRemoteFailure, Message: err.Error()}
}
