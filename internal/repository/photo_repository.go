package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// GroupPhotoRepository handles persistence for the group-photo gallery.
type GroupPhotoRepository interface {
	Create(ctx context.Context, photo *domain.GroupPhoto) error
	List(ctx context.Context) ([]domain.GroupPhoto, error)
	GetByID(ctx context.Context, id string) (*domain.GroupPhoto, error)
	Delete(ctx context.Context, id string) error
}

type groupPhotoRepository struct {
	pool *pgxpool.Pool
}

// NewGroupPhotoRepository instantiates the repository.
func NewGroupPhotoRepository(pool *pgxpool.Pool) GroupPhotoRepository {
	return &groupPhotoRepository{pool: pool}
}

func (r *groupPhotoRepository) Create(ctx context.Context, photo *domain.GroupPhoto) error {
	const query = `
        INSERT INTO group_photos (title, description, event, taken_on, image)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		photo.Title,
		photo.Description,
		photo.Event,
		photo.TakenOn,
		photo.Image,
	).Scan(&photo.ID, &photo.CreatedAt)
}

func (r *groupPhotoRepository) List(ctx context.Context) ([]domain.GroupPhoto, error) {
	const query = `
        SELECT id, title, description, event, taken_on, image, created_at
        FROM group_photos ORDER BY taken_on DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GroupPhoto
	for rows.Next() {
		var photo domain.GroupPhoto
		if err := rows.Scan(
			&photo.ID,
			&photo.Title,
			&photo.Description,
			&photo.Event,
			&photo.TakenOn,
			&photo.Image,
			&photo.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, photo)
	}
	return result, rows.Err()
}

func (r *groupPhotoRepository) GetByID(ctx context.Context, id string) (*domain.GroupPhoto, error) {
	const query = `
        SELECT id, title, description, event, taken_on, image, created_at
        FROM group_photos WHERE id=$1`

	var photo domain.GroupPhoto
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&photo.ID,
		&photo.Title,
		&photo.Description,
		&photo.Event,
		&photo.TakenOn,
		&photo.Image,
		&photo.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *groupPhotoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM group_photos WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
