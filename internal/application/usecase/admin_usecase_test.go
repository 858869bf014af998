package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/gevp-api/internal/application/audit"
	"github.com/gevp/gevp-api/internal/application/usecase"
	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/pkg/logger"
)

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.byID {
		list = append(list, u)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeUserRepo) SetActive(id string, active bool) error {
	if u, ok := r.byID[id]; ok {
		u.IsActive = active
	}
	return nil
}

func newAdminUC(users *fakeUserRepo, auditRepo *fakeAuditRepo) *usecase.AdminUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewAdminUseCase(users, auditRepo, audit.NewRecorder(auditRepo, log))
}

var superAdmin = usecase.Actor{ID: "admin-1", Role: entity.RoleSuperAdmin}

func TestActivateUser_ActivaYAudita(t *testing.T) {
	users := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	uc := newAdminUC(users, auditRepo)

	require.NoError(t, users.Create(&entity.User{ID: "u1", Email: "pendiente@example.com"}))

	require.NoError(t, uc.ActivateUser(superAdmin, "u1"))
	assert.True(t, users.byID["u1"].IsActive)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActivateUser, auditRepo.entries[0].Action)
	assert.Equal(t, "admin-1", auditRepo.entries[0].UserID)
	assert.Contains(t, auditRepo.entries[0].Description, "pendiente@example.com")
}

func TestActivateUser_Inexistente_UserNotFound(t *testing.T) {
	uc := newAdminUC(newFakeUserRepo(), &fakeAuditRepo{})
	assert.ErrorIs(t, uc.ActivateUser(superAdmin, "no-existe"), domain.ErrUserNotFound)
}

// La verificación de política dentro del caso de uso protege aun si el
// middleware de rol no estuviera delante.
func TestAdmin_RolesNoSuper_Prohibidos(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAdminUC(users, &fakeAuditRepo{})

	for _, role := range []string{entity.RoleCountryAdmin, entity.RoleEditor, ""} {
		actor := usecase.Actor{ID: "u9", Role: role, CountryID: "co"}

		_, err := uc.ListUsers(actor, 0, 0)
		assert.ErrorIs(t, err, domain.ErrForbidden, role)

		assert.ErrorIs(t, uc.ActivateUser(actor, "u1"), domain.ErrForbidden, role)

		_, err = uc.AuditLogs(actor)
		assert.ErrorIs(t, err, domain.ErrForbidden, role)
	}
}

func TestAuditLogs_Tope100Descendente(t *testing.T) {
	auditRepo := &fakeAuditRepo{}
	uc := newAdminUC(newFakeUserRepo(), auditRepo)

	base := time.Now().Add(-3 * time.Hour)
	for i := 0; i < 120; i++ {
		auditRepo.entries = append(auditRepo.entries, &entity.AuditLogEntry{
			ID:        fmt.Sprintf("log-%03d", i),
			UserID:    "u1",
			Action:    entity.AuditCreateProduct,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	logs, err := uc.AuditLogs(superAdmin)
	require.NoError(t, err)
	require.Len(t, logs, 100, "el listado se trunca a 100 entradas")

	assert.Equal(t, "log-119", logs[0].ID, "la entrada más reciente va primero")
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp),
			"el orden debe ser descendente por timestamp")
	}
}

func TestListUsers_DevuelveTodos(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAdminUC(users, &fakeAuditRepo{})

	co := "co"
	require.NoError(t, users.Create(&entity.User{ID: "u1", Email: "a@example.com", Role: entity.RoleEditor, CountryID: &co}))
	require.NoError(t, users.Create(&entity.User{ID: "u2", Email: "b@example.com", Role: entity.RoleCountryAdmin, IsActive: true}))

	list, err := uc.ListUsers(superAdmin, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListUsers_Paginado(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAdminUC(users, &fakeAuditRepo{})

	for i := 0; i < 5; i++ {
		require.NoError(t, users.Create(&entity.User{
			ID:    fmt.Sprintf("u%d", i),
			Email: fmt.Sprintf("u%d@example.com", i),
			Role:  entity.RoleEditor,
		}))
	}

	page, err := uc.ListUsers(superAdmin, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := uc.ListUsers(superAdmin, 10, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// limit fuera de rango se normaliza en lugar de fallar o devolver vacío.
	all, err := uc.ListUsers(superAdmin, -7, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
