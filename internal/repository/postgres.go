package repository

import (
	"context"
	"errors"
	"fmt"

	"vehicles-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the vehicle store on PostgreSQL.
//
// The vehicles table only carries persisted fields: price and the address portion of
// the location have no columns, so derived data can never leak into storage.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL vehicle repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const vehicleColumns = `
	id,
	condition,
	body,
	model,
	manufacturer_code,
	manufacturer_name,
	number_of_doors,
	fuel_type,
	engine,
	mileage,
	model_year,
	production_year,
	external_color,
	lat,
	lon,
	created_at,
	modified_at
`

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Condition,
		&v.Details.Body,
		&v.Details.Model,
		&v.Details.Manufacturer.Code,
		&v.Details.Manufacturer.Name,
		&v.Details.NumberOfDoors,
		&v.Details.FuelType,
		&v.Details.Engine,
		&v.Details.Mileage,
		&v.Details.ModelYear,
		&v.Details.ProductionYear,
		&v.Details.ExternalColor,
		&v.Location.Lat,
		&v.Location.Lon,
		&v.CreatedAt,
		&v.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindAll returns every vehicle record in the store
func (r *Repository) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	sql := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return vehicles, nil
}

// FindByID returns the vehicle with the given id, or (nil, nil) when no such record
// exists.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	sql := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	v, err := scanVehicle(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find vehicle %d: %w", id, err)
	}

	return v, nil
}

// Save persists the vehicle: an insert when the id is unset, an update otherwise.
// The returned record carries the store-assigned id and timestamps.
func (r *Repository) Save(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if v.ID == 0 {
		sql := `
			INSERT INTO vehicles (
				condition, body, model, manufacturer_code, manufacturer_name,
				number_of_doors, fuel_type, engine, mileage, model_year,
				production_year, external_color, lat, lon
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, created_at, modified_at
		`
		err := r.db.QueryRow(ctx, sql,
			v.Condition,
			v.Details.Body,
			v.Details.Model,
			v.Details.Manufacturer.Code,
			v.Details.Manufacturer.Name,
			v.Details.NumberOfDoors,
			v.Details.FuelType,
			v.Details.Engine,
			v.Details.Mileage,
			v.Details.ModelYear,
			v.Details.ProductionYear,
			v.Details.ExternalColor,
			v.Location.Lat,
			v.Location.Lon,
		).Scan(&v.ID, &v.CreatedAt, &v.ModifiedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to insert vehicle: %w", err)
		}
		return v, nil
	}

	sql := `
		UPDATE vehicles SET
			condition = $2,
			body = $3,
			model = $4,
			manufacturer_code = $5,
			manufacturer_name = $6,
			number_of_doors = $7,
			fuel_type = $8,
			engine = $9,
			mileage = $10,
			model_year = $11,
			production_year = $12,
			external_color = $13,
			lat = $14,
			lon = $15,
			modified_at = now()
		WHERE id = $1
		RETURNING created_at, modified_at
	`
	err := r.db.QueryRow(ctx, sql,
		v.ID,
		v.Condition,
		v.Details.Body,
		v.Details.Model,
		v.Details.Manufacturer.Code,
		v.Details.Manufacturer.Name,
		v.Details.NumberOfDoors,
		v.Details.FuelType,
		v.Details.Engine,
		v.Details.Mileage,
		v.Details.ModelYear,
		v.Details.ProductionYear,
		v.Details.ExternalColor,
		v.Location.Lat,
		v.Location.Lon,
	).Scan(&v.CreatedAt, &v.ModifiedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update vehicle %d: %w", v.ID, err)
	}

	return v, nil
}

// Delete removes the given vehicle record from the store
func (r *Repository) Delete(ctx context.Context, v *models.Vehicle) error {
	_, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, v.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to delete vehicle %d: %w", v.ID, err)
	}
	return nil
}
