package masters

import (
	"context"
	"errors"

	"SSAAM-Backend/src/models"
)

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMasterNotFound     = errors.New("master not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store persists admin accounts with a unique username.
type Store interface {
	Create(ctx context.Context, master *models.Master) error
	FindByUsername(ctx context.Context, username string) (*models.Master, error)
	List(ctx context.Context) ([]models.Master, error)
}
