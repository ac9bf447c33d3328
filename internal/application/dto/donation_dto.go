package dto

import "time"

// CreateDonationRequest entrada para publicar una donación.
// ExpiryDate acepta RFC3339 o fecha simple (2006-01-02), como envía el cliente móvil.
type CreateDonationRequest struct {
	FoodName      string `json:"foodName" validate:"required,min=1,max=200"`
	Quantity      string `json:"quantity" validate:"required,min=1,max=100"`
	Description   string `json:"description" validate:"required,min=1"`
	PickupAddress string `json:"pickupAddress" validate:"required,min=1"`
	ExpiryDate    string `json:"expiryDate" validate:"required"`
}

// UpdateStatusRequest entrada para cambiar el estado de una donación.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted completed"`
}

// DonationResponse salida de una donación. donorName/donorEmail son el
// snapshot tomado al crear, no el estado actual del usuario.
type DonationResponse struct {
	ID            string    `json:"id"`
	DonorID       string    `json:"donorId"`
	DonorName     string    `json:"donorName"`
	DonorEmail    string    `json:"donorEmail"`
	FoodName      string    `json:"foodName"`
	Quantity      string    `json:"quantity"`
	Description   string    `json:"description"`
	PickupAddress string    `json:"pickupAddress"`
	ExpiryDate    time.Time `json:"expiryDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
