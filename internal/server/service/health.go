package service

import (
	"context"
	"time"
)

// healthTimeout: сколько ждать ответа базы при проверке.
const healthTimeout = 2 * time.Second

// HealthService отвечает на health-check балансировщика.
type HealthService struct {
	repo HealthRepo
}

func NewHealthService(repo HealthRepo) *HealthService {
	return &HealthService{repo: repo}
}

// Check возвращает ошибку, если база недоступна.
func (s *HealthService) Check(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return s.repo.Ping(ctx)
}
