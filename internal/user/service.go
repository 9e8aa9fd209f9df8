package user

import (
	"log/slog"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", userID)
		return nil, err
	}
	return u, nil
}
