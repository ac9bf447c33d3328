package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/foodforgood-api/internal/application/auth"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/internal/domain"
	"github.com/jhoicas/foodforgood-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/foodforgood-api/pkg/jwt"
)

const testSecret = "secret-para-tests-de-auth"

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:  testSecret,
		ExpDays: 5,
		Issuer:  "foodforgood-test",
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FullName: "Ana Donante",
		Email:    "ana@ejemplo.com",
		Password: "password123",
		UserType: "donor",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYTokenConClaims(t *testing.T) {
	uc, repo := newUseCase()

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, "Ana Donante", out.User.FullName)
	assert.Equal(t, "ana@ejemplo.com", out.User.Email)
	assert.Equal(t, "donor", out.User.UserType)
	assert.NotEmpty(t, out.User.ID)

	// Los claims del token deben coincidir con el usuario persistido.
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, out.User.Email, claims.Email)
	assert.Equal(t, "donor", claims.UserType)

	stored, err := repo.FindByID(out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "donor", stored.UserType)
}

func TestRegister_HasheaPassword_NuncaLaDevuelve(t *testing.T) {
	uc, repo := newUseCase()

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)

	stored, _ := repo.FindByID(out.User.ID)
	require.NotNil(t, stored)

	// El hash debe validar con bcrypt y nunca ser la password en claro.
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegister_EmailDuplicado_Retorna_ErrEmailAlreadyExists(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	// Mismo email con el resto de campos distintos: el email manda.
	in := registerRequest()
	in.FullName = "Otra Persona"
	in.Password = "otra-password"
	in.UserType = "ngo"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposFaltantes_Retorna_ErrInvalidInput(t *testing.T) {
	uc, _ := newUseCase()

	casos := []dto.RegisterRequest{
		{Email: "x@x.com", Password: "pw123456", UserType: "donor"},              // sin fullName
		{FullName: "X", Password: "pw123456", UserType: "donor"},                // sin email
		{FullName: "X", Email: "x@x.com", UserType: "donor"},                    // sin password
		{FullName: "X", Email: "x@x.com", Password: "pw123456"},                 // sin userType
		{FullName: "X", Email: "x@x.com", Password: "pw123456", UserType: "admin"}, // tipo fuera del enum
	}
	for _, in := range casos {
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_DevuelveTokenYProyeccion(t *testing.T) {
	uc, _ := newUseCase()
	registered, err := uc.Register(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.Equal(t, "donor", out.User.UserType)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "ana@ejemplo.com", claims.Email)
}

func TestLogin_PasswordIncorrecta_Y_EmailDesconocido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, errPassword := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "incorrecta"})
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "password123"})
	assert.ErrorIs(t, errEmail, domain.ErrUserNotFound)
	// Ambos casos colapsan en el handler al mismo 400 genérico.
}
