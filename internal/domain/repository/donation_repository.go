package repository

import "github.com/jhoicas/foodforgood-api/internal/domain/entity"

// DonationRepository define el puerto de persistencia para Donation (DIP).
// Las donaciones nunca se borran; la única mutación es el campo status.
type DonationRepository interface {
	Create(d *entity.Donation) error
	FindByID(id string) (*entity.Donation, error)
	// ListAll devuelve todas las donaciones, más recientes primero.
	ListAll() ([]*entity.Donation, error)
	// ListByDonor devuelve las donaciones de un donante, más recientes primero.
	ListByDonor(donorID string) ([]*entity.Donation, error)
	// UpdateStatus asigna el estado y devuelve el registro actualizado,
	// o nil si el id no existe (last-write-wins, sin lock optimista).
	UpdateStatus(id, status string) (*entity.Donation, error)
}
