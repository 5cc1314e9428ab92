package service

import (
	"github.com/MKhiriev/go-learn-tracker/internal/config"
	"github.com/MKhiriev/go-learn-tracker/internal/crypto"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/store"
)

type Services struct {
	AuthService     AuthService
	LearningService LearningService
	SessionTimer    SessionTimer
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		LearningService: NewLearningService(storages.DocumentRepository, logger),
		SessionTimer:    NewSessionTimer(cfg.Session.IdleCeiling, cfg.Session.TickInterval),
	}
}
