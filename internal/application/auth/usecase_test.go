package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gevp/gevp-api/internal/application/auth"
	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[string]*entity.User
	byEmail    map[string]*entity.User
	byEmailErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
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

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.byEmailErr != nil {
		return nil, r.byEmailErr
	}
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.byID {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) SetActive(id string, active bool) error {
	if u, ok := r.byID[id]; ok {
		u.IsActive = active
	}
	return nil
}

type fakeCountryRepo struct {
	countries map[string]*entity.Country
}

func (r *fakeCountryRepo) GetByID(id string) (*entity.Country, error) { return r.countries[id], nil }
func (r *fakeCountryRepo) List() ([]*entity.Country, error)           { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────

func newAuthUC(users *fakeUserRepo) *auth.AuthUseCase {
	countries := &fakeCountryRepo{countries: map[string]*entity.Country{
		"co": {ID: "co", Name: "Colombia", Code: "CO"},
	}}
	return auth.NewAuthUseCase(users, countries, auth.JWTConfig{
		Secret:     "test-secret",
		Algorithm:  "HS256",
		ExpMinutes: 30,
		Issuer:     "gevp-api-test",
	})
}

func TestRegister_CreaUsuarioInactivoConHashBcrypt(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users)

	country := "co"
	out, err := uc.Register(dto.RegisterRequest{
		Email:     "ana@example.com",
		Password:  "s3cret-pass",
		Role:      entity.RoleEditor,
		CountryID: &country,
	})
	require.NoError(t, err)

	assert.False(t, out.IsActive, "el registro debe quedar inactivo hasta aprobación")
	assert.Equal(t, entity.RoleEditor, out.Role)

	stored := users.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")),
		"verify(password, hash(password)) debe ser true")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("otro-pass")),
		"cualquier otro password debe fallar la verificación")
}

func TestRegister_RolPorDefectoEditor(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	out, err := uc.Register(dto.RegisterRequest{Email: "b@example.com", Password: "12345678x"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, out.Role)
}

func TestRegister_EmailDuplicado_NoModificaElOriginal(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users)

	_, err := uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "primera-pass"})
	require.NoError(t, err)
	originalHash := users.byEmail["dup@example.com"].PasswordHash

	_, err = uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "segunda-pass"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, originalHash, users.byEmail["dup@example.com"].PasswordHash,
		"el registro original debe quedar intacto")
}

// Un fallo del store al consultar el email no debe leerse como "email libre".
func TestRegister_FalloDelStore_SePropaga(t *testing.T) {
	users := newFakeUserRepo()
	users.byEmailErr = errors.New("select user: conexión perdida")
	uc := newAuthUC(users)

	_, err := uc.Register(dto.RegisterRequest{Email: "d@example.com", Password: "12345678x"})
	require.ErrorIs(t, err, users.byEmailErr)
	assert.Empty(t, users.byID, "no debe intentarse el insert")
}

func TestRegister_PaisInexistente_RetornaNotFound(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	missing := "xx"
	_, err := uc.Register(dto.RegisterRequest{Email: "c@example.com", Password: "12345678x", CountryID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_EmiteTokenBearer(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users)

	_, err := uc.Register(dto.RegisterRequest{Email: "login@example.com", Password: "12345678x"})
	require.NoError(t, err)
	require.NoError(t, users.SetActive(users.byEmail["login@example.com"].ID, true))

	out, err := uc.Login("login@example.com", "12345678x")
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

// Usuario inexistente y password incorrecto devuelven el mismo error.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users)

	_, err := uc.Register(dto.RegisterRequest{Email: "x@example.com", Password: "12345678x"})
	require.NoError(t, err)
	require.NoError(t, users.SetActive(users.byEmail["x@example.com"].ID, true))

	_, errMissing := uc.Login("nadie@example.com", "12345678x")
	_, errWrong := uc.Login("x@example.com", "password-incorrecto")

	assert.ErrorIs(t, errMissing, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrong, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_Rechazada(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Register(dto.RegisterRequest{Email: "inactive@example.com", Password: "12345678x"})
	require.NoError(t, err)

	_, err = uc.Login("inactive@example.com", "12345678x")
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}
