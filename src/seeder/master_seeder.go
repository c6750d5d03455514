package seeder

import (
	"context"
	"errors"

	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/services/masters"

	"github.com/rs/zerolog"
)

// SeedMaster creates the first admin account when both credentials are set.
// An existing account with the same username is left untouched.
func SeedMaster(ctx context.Context, svc *masters.Service, username, password string, log zerolog.Logger) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := svc.Create(ctx, models.MasterCredentials{Username: username, Password: password})
	if errors.Is(err, masters.ErrUsernameTaken) {
		log.Debug().Str("username", username).Msg("seed admin already exists")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("seeded admin account")
	return nil
}
