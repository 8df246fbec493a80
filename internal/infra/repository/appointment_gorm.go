package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// AppointmentGormRepository keeps one row per appointment. The store is
// append-only, so Save inserts the rows it has not seen and leaves the rest.
// Position only grows: rows dropped at load keep theirs and new rows are
// numbered after the highest one in the table.
type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Load(ctx context.Context) ([]domain.Appointment, error) {
	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Appointment{
			ID:          row.ID,
			Date:        row.Date,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			Description: row.Description,
		})
	}
	return out, nil
}

func (r *AppointmentGormRepository) Save(ctx context.Context, aps []domain.Appointment) error {
	if len(aps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(aps))
	for _, ap := range aps {
		ids = append(ids, ap.ID)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored []string
		if err := tx.Model(&models.Appointment{}).
			Where("id IN ?", ids).
			Pluck("id", &stored).Error; err != nil {
			return fmt.Errorf("load stored ids: %w", err)
		}
		seen := make(map[string]struct{}, len(stored))
		for _, id := range stored {
			seen[id] = struct{}{}
		}

		var next int
		if err := tx.Model(&models.Appointment{}).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error; err != nil {
			return fmt.Errorf("next position: %w", err)
		}

		rows := make([]models.Appointment, 0, len(aps)-len(seen))
		for _, ap := range aps {
			if _, ok := seen[ap.ID]; ok {
				continue
			}
			rows = append(rows, models.Appointment{
				ID:          ap.ID,
				Position:    next,
				Date:        ap.Date,
				StartTime:   ap.StartTime,
				EndTime:     ap.EndTime,
				Description: ap.Description,
			})
			next++
		}
		if len(rows) == 0 {
			return nil
		}

		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			CreateInBatches(&rows, 100).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
