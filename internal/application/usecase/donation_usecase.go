package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/internal/domain"
	"github.com/jhoicas/foodforgood-api/internal/domain/entity"
	"github.com/jhoicas/foodforgood-api/internal/domain/repository"
)

// activityRecorder es el contrato mínimo que necesita el caso de uso para
// reportar métricas. Lo implementa *metrics.Collector; el uso de interfaz
// evita acoplar la capa de aplicación a Prometheus.
type activityRecorder interface {
	RecordDonationCreated()
	RecordStatusUpdate(status string)
}

// nopRecorder se usa cuando no se inyectan métricas (tests).
type nopRecorder struct{}

func (nopRecorder) RecordDonationCreated()      {}
func (nopRecorder) RecordStatusUpdate(s string) {}

// DonationUseCase flujo de donaciones: crear, listar, consultar y cambiar estado.
// Cada operación relee al actor desde el store de usuarios y decide por el
// user_type persistido, no por el claim del token: si el claim y el store
// divergen, manda el store.
type DonationUseCase struct {
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
	recorder     activityRecorder
}

// NewDonationUseCase construye el caso de uso. recorder puede ser nil.
func NewDonationUseCase(donationRepo repository.DonationRepository, userRepo repository.UserRepository, recorder activityRecorder) *DonationUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &DonationUseCase{donationRepo: donationRepo, userRepo: userRepo, recorder: recorder}
}

// actor relee al usuario autenticado. Un token cuyo usuario ya no resuelve
// devuelve ErrUserNotFound (el handler responde 401).
func (uc *DonationUseCase) actor(actorID string) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Create publica una donación. Solo donantes; los cinco campos son
// obligatorios. El snapshot donorName/donorEmail se toma del usuario releído,
// no del token. El estado inicial siempre es pending.
func (uc *DonationUseCase) Create(actorID string, in dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	user, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if user.UserType != entity.UserTypeDonor {
		return nil, domain.ErrForbidden
	}
	if in.FoodName == "" || in.Quantity == "" || in.Description == "" || in.PickupAddress == "" || in.ExpiryDate == "" {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiryDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	donation := &entity.Donation{
		ID:            uuid.New().String(),
		DonorID:       user.ID,
		DonorName:     user.FullName,
		DonorEmail:    user.Email,
		FoodName:      in.FoodName,
		Quantity:      in.Quantity,
		Description:   in.Description,
		PickupAddress: in.PickupAddress,
		ExpiryDate:    expiry,
		Status:        entity.StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := uc.donationRepo.Create(donation); err != nil {
		return nil, err
	}
	uc.recorder.RecordDonationCreated()
	return toDonationResponse(donation), nil
}

// List devuelve donaciones según el rol: una ONG ve todas, un donante solo
// las suyas. Siempre más recientes primero; sin paginación (el cliente móvil
// filtra por estado localmente).
func (uc *DonationUseCase) List(actorID string) ([]*dto.DonationResponse, error) {
	user, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	var donations []*entity.Donation
	if user.UserType == entity.UserTypeNGO {
		donations, err = uc.donationRepo.ListAll()
	} else {
		donations, err = uc.donationRepo.ListByDonor(user.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, toDonationResponse(d))
	}
	return out, nil
}

// GetByID devuelve una donación. Una ONG puede consultar cualquiera;
// un donante solo las propias.
func (uc *DonationUseCase) GetByID(actorID, donationID string) (*dto.DonationResponse, error) {
	user, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	donation, err := uc.donationRepo.FindByID(donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, domain.ErrNotFound
	}
	if user.UserType != entity.UserTypeNGO && donation.DonorID != user.ID {
		return nil, domain.ErrForbidden
	}
	return toDonationResponse(donation), nil
}

// UpdateStatus asigna un estado a la donación. Solo ONGs. El único control
// sobre el valor es la pertenencia al enum: no hay guardia de transición,
// una ONG puede volver una donación completed a pending (decisión
// documentada en DESIGN.md).
func (uc *DonationUseCase) UpdateStatus(actorID, donationID, status string) (*dto.DonationResponse, error) {
	user, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if user.UserType != entity.UserTypeNGO {
		return nil, domain.ErrForbidden
	}
	if !entity.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	donation, err := uc.donationRepo.UpdateStatus(donationID, status)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, domain.ErrNotFound
	}
	uc.recorder.RecordStatusUpdate(status)
	return toDonationResponse(donation), nil
}

// parseExpiryDate acepta RFC3339 o fecha simple (el picker del cliente móvil
// envía ambos formatos según la plataforma).
func parseExpiryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toDonationResponse(d *entity.Donation) *dto.DonationResponse {
	if d == nil {
		return nil
	}
	return &dto.DonationResponse{
		ID:            d.ID,
		DonorID:       d.DonorID,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		FoodName:      d.FoodName,
		Quantity:      d.Quantity,
		Description:   d.Description,
		PickupAddress: d.PickupAddress,
		ExpiryDate:    d.ExpiryDate,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}
