package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevp/gevp-api/internal/application/audit"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/pkg/logger"
)

type fakeAuditRepo struct {
	entries []*entity.AuditLogEntry
	failing bool
}

func (r *fakeAuditRepo) Create(e *entity.AuditLogEntry) error {
	if r.failing {
		return errors.New("insert audit log: conexión perdida")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) ListRecent(limit int) ([]*entity.AuditLogEntry, error) {
	return r.entries, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestRecord_AgregaEntradaCompleta(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	rec.Record("user-1", entity.AuditDeleteProduct, "Deleted product: Café")

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "user-1", e.UserID)
	assert.Equal(t, entity.AuditDeleteProduct, e.Action)
	assert.Equal(t, "Deleted product: Café", e.Description)
	assert.False(t, e.Timestamp.IsZero())
}

// Un fallo al insertar no debe propagarse: la operación primaria ya ocurrió.
func TestRecord_FalloDePersistenciaNoSePropaga(t *testing.T) {
	repo := &fakeAuditRepo{failing: true}
	rec := audit.NewRecorder(repo, testLogger())

	assert.NotPanics(t, func() {
		rec.Record("user-1", entity.AuditCreateProduct, "Created product: Café")
	})
	assert.Empty(t, repo.entries)
}
