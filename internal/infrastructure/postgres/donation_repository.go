package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/foodforgood-api/internal/domain/entity"
	"github.com/jhoicas/foodforgood-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

const donationColumns = `id, donor_id, donor_name, donor_email, food_name, quantity,
		description, pickup_address, expiry_date, status, created_at`

// DonationRepo implementación del puerto DonationRepository sobre PostgreSQL.
type DonationRepo struct {
	pool *pgxpool.Pool
}

// NewDonationRepository construye el adaptador de persistencia para donaciones.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

// Create persiste una nueva donación.
func (r *DonationRepo) Create(d *entity.Donation) error {
	query := `
		INSERT INTO donations (id, donor_id, donor_name, donor_email, food_name, quantity,
			description, pickup_address, expiry_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.DonorID, d.DonorName, d.DonorEmail, d.FoodName, d.Quantity,
		d.Description, d.PickupAddress, d.ExpiryDate, d.Status, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// FindByID obtiene una donación por ID. Devuelve nil si no existe.
func (r *DonationRepo) FindByID(id string) (*entity.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	d, err := r.scanRow(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get donation by id: %w", err)
	}
	return d, nil
}

// ListAll lista todas las donaciones, más recientes primero.
func (r *DonationRepo) ListAll() ([]*entity.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return r.collect(rows)
}

// ListByDonor lista las donaciones de un donante, más recientes primero.
func (r *DonationRepo) ListByDonor(donorID string) ([]*entity.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donor_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, donorID)
	if err != nil {
		return nil, fmt.Errorf("list donations by donor: %w", err)
	}
	return r.collect(rows)
}

// UpdateStatus asigna el estado y devuelve el registro actualizado en una sola
// sentencia (last-write-wins a nivel de fila). Devuelve nil si el id no existe.
func (r *DonationRepo) UpdateStatus(id, status string) (*entity.Donation, error) {
	query := `UPDATE donations SET status = $2 WHERE id = $1 RETURNING ` + donationColumns
	d, err := r.scanRow(r.pool.QueryRow(context.Background(), query, id, status))
	if err != nil {
		return nil, fmt.Errorf("update donation status: %w", err)
	}
	return d, nil
}

func (r *DonationRepo) scanRow(row pgx.Row) (*entity.Donation, error) {
	var d entity.Donation
	err := row.Scan(
		&d.ID, &d.DonorID, &d.DonorName, &d.DonorEmail, &d.FoodName, &d.Quantity,
		&d.Description, &d.PickupAddress, &d.ExpiryDate, &d.Status, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepo) collect(rows pgx.Rows) ([]*entity.Donation, error) {
	defer rows.Close()
	var list []*entity.Donation
	for rows.Next() {
		var d entity.Donation
		if err := rows.Scan(
			&d.ID, &d.DonorID, &d.DonorName, &d.DonorEmail, &d.FoodName, &d.Quantity,
			&d.Description, &d.PickupAddress, &d.ExpiryDate, &d.Status, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
