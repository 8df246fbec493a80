package audit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestLogger_WritesAuditRows(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	d := NewDispatcher(zap.NewNop(), New(db))
	d.Dispatch(Event{
		Action:   ActionAppointmentConflict,
		Entity:   "booking",
		EntityID: "b-1",
		Metadata: map[string]any{"suggestions": 3},
	})
	d.Dispatch(Event{Action: ActionSuggestionsRejected, Entity: "booking", EntityID: "b-1"})
	d.Close()

	var rows []models.AuditLog
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, ActionAppointmentConflict, rows[0].Action)
	assert.Equal(t, "b-1", rows[0].EntityID)
	assert.JSONEq(t, `{"suggestions":3}`, rows[0].Metadata)
	assert.Empty(t, rows[1].Metadata)
}

func TestLogger_Direct(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	require.NoError(t, New(db).Log(context.Background(), Event{Action: ActionAppointmentCreated, Entity: "appointment"}))

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
