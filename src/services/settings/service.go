package settings

import (
	"context"

	"SSAAM-Backend/src/models"

	"github.com/rs/zerolog"
)

const (
	defaultRegisterClosedMessage = "Registration is currently disabled."
	defaultLoginClosedMessage    = "Login is currently disabled."
)

type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("component", "settings_service").Logger(),
	}
}

func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	return s.store.GetOrCreate(ctx)
}

// Update applies the sections present in req. A section without its flag
// is treated as enabled.
func (s *Service) Update(ctx context.Context, req models.SettingsUpdate) (*models.Settings, error) {
	var register *models.RegisterSetting
	if req.UserRegister != nil {
		register = &models.RegisterSetting{Register: true, Message: req.UserRegister.Message}
		if req.UserRegister.Register != nil {
			register.Register = *req.UserRegister.Register
		}
	}

	var login *models.LoginSetting
	if req.UserLogin != nil {
		login = &models.LoginSetting{Login: true, Message: req.UserLogin.Message}
		if req.UserLogin.Login != nil {
			login.Login = *req.UserLogin.Login
		}
	}

	out, err := s.store.Update(ctx, register, login)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to update settings")
		return nil, err
	}
	s.log.Info().
		Bool("register", out.UserRegister.Register).
		Bool("login", out.UserLogin.Login).
		Msg("settings updated")
	return out, nil
}

// RegistrationOpen reports whether new students may register, and the
// message to show when they may not.
func (s *Service) RegistrationOpen(ctx context.Context) (bool, string, error) {
	st, err := s.store.GetOrCreate(ctx)
	if err != nil {
		return true, "", err
	}
	if st.UserRegister.Register {
		return true, "", nil
	}
	if st.UserRegister.Message != "" {
		return false, st.UserRegister.Message, nil
	}
	return false, defaultRegisterClosedMessage, nil
}

// LoginOpen is RegistrationOpen for the student login toggle.
func (s *Service) LoginOpen(ctx context.Context) (bool, string, error) {
	st, err := s.store.GetOrCreate(ctx)
	if err != nil {
		return true, "", err
	}
	if st.UserLogin.Login {
		return true, "", nil
	}
	if st.UserLogin.Message != "" {
		return false, st.UserLogin.Message, nil
	}
	return false, defaultLoginClosedMessage, nil
}
