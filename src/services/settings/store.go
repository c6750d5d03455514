package settings

import (
	"context"

	"SSAAM-Backend/src/models"
)

// Store holds the singleton settings document.
type Store interface {
	// GetOrCreate returns the settings, atomically creating the defaults
	// when none exist yet.
	GetOrCreate(ctx context.Context) (*models.Settings, error)
	// Update replaces the given sections; nil sections are kept.
	Update(ctx context.Context, register *models.RegisterSetting, login *models.LoginSetting) (*models.Settings, error)
}
