package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodforgood-api/internal/application/auth"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/internal/application/usecase"
	"github.com/jhoicas/foodforgood-api/internal/domain"
	"github.com/jhoicas/foodforgood-api/internal/domain/entity"
	apphttp "github.com/jhoicas/foodforgood-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para montar la API completa sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memDonationRepo struct {
	donations []*entity.Donation
}

func (r *memDonationRepo) Create(d *entity.Donation) error {
	cp := *d
	r.donations = append(r.donations, &cp)
	return nil
}

func (r *memDonationRepo) FindByID(id string) (*entity.Donation, error) {
	for _, d := range r.donations {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDonationRepo) ListAll() ([]*entity.Donation, error) {
	out := append([]*entity.Donation(nil), r.donations...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) ListByDonor(donorID string) ([]*entity.Donation, error) {
	var out []*entity.Donation
	for _, d := range r.donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) UpdateStatus(id, status string) (*entity.Donation, error) {
	for _, d := range r.donations {
		if d.ID == id {
			d.Status = status
			return d, nil
		}
	}
	return nil, nil
}

// buildAPI monta la aplicación Fiber completa con repos en memoria.
func buildAPI() *fiber.App {
	userRepo := &memUserRepo{}
	donationRepo := &memDonationRepo{}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})
	donationUC := usecase.NewDonationUseCase(donationRepo, userRepo, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		DonationUC: donationUC,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, fullName, email, password, userType string) dto.AuthResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/users/register", "", dto.RegisterRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
		UserType: userType,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.AuthResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicado_Retorna400(t *testing.T) {
	app := buildAPI()
	registerUser(t, app, "Ana", "ana@x.com", "pw1234", "donor")

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", "", dto.RegisterRequest{
		FullName: "Otra Ana",
		Email:    "ana@x.com",
		Password: "distinta",
		UserType: "ngo",
	})
	defer resp.Body.Close()

	// Contrato histórico: 400, no 409.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_EmailDesconocido_Y_PasswordIncorrecta_MismaRespuesta(t *testing.T) {
	app := buildAPI()
	registerUser(t, app, "Ana", "ana@x.com", "pw1234", "donor")

	respPassword := doJSON(t, app, http.MethodPost, "/api/users/login", "", dto.LoginRequest{Email: "ana@x.com", Password: "mala"})
	respEmail := doJSON(t, app, http.MethodPost, "/api/users/login", "", dto.LoginRequest{Email: "nadie@x.com", Password: "pw1234"})

	bodyPassword := decode[dto.ErrorResponse](t, respPassword)
	bodyEmail := decode[dto.ErrorResponse](t, respEmail)

	assert.Equal(t, http.StatusBadRequest, respPassword.StatusCode)
	assert.Equal(t, http.StatusBadRequest, respEmail.StatusCode)
	// Mismo código y mensaje: sin enumeración de cuentas.
	assert.Equal(t, bodyPassword, bodyEmail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de donaciones por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestDonations_SinToken_Retorna401(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodGet, "/api/donations", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateDonation_ONG_Retorna403(t *testing.T) {
	app := buildAPI()
	ngo := registerUser(t, app, "ONG B", "b@x.com", "pw2", "ngo")

	resp := doJSON(t, app, http.MethodPost, "/api/donations", ngo.Token, dto.CreateDonationRequest{
		FoodName:      "Pan",
		Quantity:      "10 unidades",
		Description:   "Pan del día",
		PickupAddress: "Carrera 7 #12-34",
		ExpiryDate:    "2026-10-01",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateStatus_IdDesconocido_Retorna404(t *testing.T) {
	app := buildAPI()
	ngo := registerUser(t, app, "ONG B", "b@x.com", "pw2", "ngo")

	resp := doJSON(t, app, http.MethodPut, "/api/donations/inexistente", ngo.Token, dto.UpdateStatusRequest{Status: "accepted"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Escenario completo: registra donante A y ONG B; A crea D1; B la ve pending,
// la acepta; A vuelve a listar y la ve accepted.
func TestEscenario_DonanteCrea_ONGAcepta_DonanteVeElCambio(t *testing.T) {
	app := buildAPI()

	donorA := registerUser(t, app, "Donante A", "a@x.com", "pw1", "donor")
	ngoB := registerUser(t, app, "ONG B", "b@x.com", "pw2", "ngo")

	// A crea la donación D1.
	respCreate := doJSON(t, app, http.MethodPost, "/api/donations", donorA.Token, dto.CreateDonationRequest{
		FoodName:      "Rice",
		Quantity:      "5 kg",
		Description:   "Arroz sin abrir",
		PickupAddress: "Calle 10 #5-23",
		ExpiryDate:    "2026-12-31",
	})
	require.Equal(t, http.StatusOK, respCreate.StatusCode)
	d1 := decode[dto.DonationResponse](t, respCreate)
	assert.Equal(t, "pending", d1.Status)
	assert.Equal(t, donorA.User.ID, d1.DonorID)
	assert.Equal(t, "Donante A", d1.DonorName)

	// B lista: ve [D1] en pending.
	respList := doJSON(t, app, http.MethodGet, "/api/donations", ngoB.Token, nil)
	require.Equal(t, http.StatusOK, respList.StatusCode)
	listB := decode[[]dto.DonationResponse](t, respList)
	require.Len(t, listB, 1)
	assert.Equal(t, d1.ID, listB[0].ID)
	assert.Equal(t, "pending", listB[0].Status)

	// B acepta D1.
	respUpdate := doJSON(t, app, http.MethodPut, "/api/donations/"+d1.ID, ngoB.Token, dto.UpdateStatusRequest{Status: "accepted"})
	require.Equal(t, http.StatusOK, respUpdate.StatusCode)
	updated := decode[dto.DonationResponse](t, respUpdate)
	assert.Equal(t, "accepted", updated.Status)

	// A lista: ve [D1] en accepted.
	respListA := doJSON(t, app, http.MethodGet, "/api/donations", donorA.Token, nil)
	require.Equal(t, http.StatusOK, respListA.StatusCode)
	listA := decode[[]dto.DonationResponse](t, respListA)
	require.Len(t, listA, 1)
	assert.Equal(t, "accepted", listA[0].Status)

	// A no puede cambiar el estado (rol donor) y el registro queda intacto.
	respForbidden := doJSON(t, app, http.MethodPut, "/api/donations/"+d1.ID, donorA.Token, dto.UpdateStatusRequest{Status: "completed"})
	assert.Equal(t, http.StatusForbidden, respForbidden.StatusCode)
	respForbidden.Body.Close()

	respDetail := doJSON(t, app, http.MethodGet, "/api/donations/"+d1.ID, donorA.Token, nil)
	require.Equal(t, http.StatusOK, respDetail.StatusCode)
	detail := decode[dto.DonationResponse](t, respDetail)
	assert.Equal(t, "accepted", detail.Status)
}
