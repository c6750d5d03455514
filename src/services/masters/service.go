package masters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Service manages admin accounts and issues their tokens.
type Service struct {
	store      Store
	issuer     *utils.TokenIssuer
	bcryptCost int
	validate   *validator.Validate
	log        zerolog.Logger
}

func NewService(store Store, issuer *utils.TokenIssuer, bcryptCost int, log zerolog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:      store,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		validate:   utils.NewValidator(),
		log:        log.With().Str("component", "master_service").Logger(),
	}
}

// Create registers a new admin. The endpoint calling this is unauthenticated.
func (s *Service) Create(ctx context.Context, in models.MasterCredentials) (*models.Master, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, ErrMissingCredentials
	}

	_, err := s.store.FindByUsername(ctx, in.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrMasterNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	master := &models.Master{
		ID:        primitive.NewObjectID(),
		Username:  in.Username,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, master); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", master.Username).Msg("admin account created")
	return master, nil
}

// Login checks the password and returns a signed token for the admin.
func (s *Service) Login(ctx context.Context, in models.MasterCredentials) (string, *models.Master, error) {
	master, err := s.store.FindByUsername(ctx, in.Username)
	if errors.Is(err, ErrMasterNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(master.Password), []byte(in.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateJWT(master.ID.Hex(), master.Username)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, master, nil
}

// List returns every admin account.
func (s *Service) List(ctx context.Context) ([]models.Master, error) {
	return s.store.List(ctx)
}
