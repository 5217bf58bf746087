package repository

import (
	"context"
	"errors"
	"fmt"

	"address-directory/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the address store on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the addresses table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`
	_, err := r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("repository: failed to ensure schema: %w", err)
	}
	return nil
}

// scanAddress decodes one table row into an Address.
func scanAddress(row pgx.Row) (models.Address, error) {
	var addr models.Address
	err := row.Scan(&addr.ID, &addr.Name, &addr.Latitude, &addr.Longitude)
	return addr, err
}

// InsertAddress stores a new address and returns it with its assigned id.
func (r *Repository) InsertAddress(ctx context.Context, name string, lat, lon float64) (models.Address, error) {
	sql := `
		INSERT INTO addresses (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id, name, latitude, longitude
	`

	addr, err := scanAddress(r.db.QueryRow(ctx, sql, name, lat, lon))
	if err != nil {
		return models.Address{}, fmt.Errorf("repository: failed to insert address: %w", err)
	}
	return addr, nil
}

// GetAddress fetches one address by id.
func (r *Repository) GetAddress(ctx context.Context, id int) (models.Address, error) {
	sql := `
		SELECT id, name, latitude, longitude
		FROM addresses
		WHERE id = $1
	`

	addr, err := scanAddress(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Address{}, models.ErrNotFound
		}
		return models.Address{}, fmt.Errorf("repository: failed to get address: %w", err)
	}
	return addr, nil
}

// ListAddresses returns every stored address in insertion order.
func (r *Repository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	sql := `
		SELECT id, name, latitude, longitude
		FROM addresses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		addresses = append(addresses, addr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return addresses, nil
}

// UpdateAddress applies the non-nil fields to the matching record and returns
// the updated row. Nil fields keep their stored values.
func (r *Repository) UpdateAddress(ctx context.Context, id int, name *string, lat, lon *float64) (models.Address, error) {
	sql := `
		UPDATE addresses
		SET name = COALESCE($2, name),
		    latitude = COALESCE($3, latitude),
		    longitude = COALESCE($4, longitude)
		WHERE id = $1
		RETURNING id, name, latitude, longitude
	`

	addr, err := scanAddress(r.db.QueryRow(ctx, sql, id, name, lat, lon))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Address{}, models.ErrNotFound
		}
		return models.Address{}, fmt.Errorf("repository: failed to update address: %w", err)
	}
	return addr, nil
}

// DeleteAddress removes the matching record.
func (r *Repository) DeleteAddress(ctx context.Context, id int) error {
	sql := `DELETE FROM addresses WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
