package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sceneloom/internal/models"
)

// SettingsRepository is the single-slot local cache for the settings
// envelope. Load returns the payload exactly as persisted, however old its
// schema; interpreting it is the migration engine's job.
type SettingsRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte, version int) error
}

type settingsRepository struct {
	db   *gorm.DB
	slot string
}

func NewSettingsRepository(db *gorm.DB, slot string) SettingsRepository {
	return &settingsRepository{db: db, slot: slot}
}

// Load returns the raw envelope payload, or nil when the slot has never been
// written. Absence is not an error.
func (r *settingsRepository) Load(ctx context.Context) ([]byte, error) {
	var record models.SettingsRecord
	err := r.db.WithContext(ctx).Where("name = ?", r.slot).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading settings slot %q: %w", r.slot, err)
	}
	return record.Payload, nil
}

// Save overwrites the slot with payload. The write is synchronous; callers
// rely on the cache never lagging more than one mutation behind memory.
func (r *settingsRepository) Save(ctx context.Context, payload []byte, version int) error {
	record := models.SettingsRecord{
		Name:    r.slot,
		Payload: payload,
		Version: version,
	}

	err := r.db.WithContext(ctx).
		Where("name = ?", r.slot).
		Assign(map[string]any{"payload": payload, "version": version}).
		FirstOrCreate(&record).Error
	if err != nil {
		return fmt.Errorf("saving settings slot %q: %w", r.slot, err)
	}
	return nil
}
