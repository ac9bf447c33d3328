package entity

import "time"

// Estados válidos para Donation. El campo es un enum de tres valores sin
// guardia de transición: una ONG puede asignar cualquiera de los tres en
// cualquier momento.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
)

// IsValidStatus verifica que el estado sea uno de los tres valores del enum.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusCompleted
}

// Donation representa una donación de alimentos publicada por un donante.
// DonorName y DonorEmail son snapshots copiados al crear: no son referencias
// vivas al usuario (histórico intencional).
type Donation struct {
	ID            string
	DonorID       string
	DonorName     string
	DonorEmail    string
	FoodName      string
	Quantity      string // texto libre: "2 bolsas", "5 kg"
	Description   string
	PickupAddress string
	ExpiryDate    time.Time
	Status        string // pending, accepted, completed
	CreatedAt     time.Time
}
