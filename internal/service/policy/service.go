package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CallCenterService/internal/domain"
	policyRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-CallCenterService/internal/service/policy/models"
)

// Service классифицирует звонящих по номеру полиса
type Service struct {
	policyRepo PolicyRepository
	metrics    Metrics
	logger     Logger
	now        func() time.Time
}

// NewService создает новый экземпляр сервиса полисов
func NewService(policyRepo PolicyRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		metrics:    metrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник текущего времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Classify ищет полис по точному номеру и определяет категорию клиента.
// Срок действия сравнивается с текущим моментом в UTC.
func (s *Service) Classify(ctx context.Context, number string) (*models.ClassifyResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		s.logger.Warn("Classify: empty policy number")
		return nil, fmt.Errorf("%w: policy number is required", ErrInvalidInput)
	}

	policy, err := s.policyRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Classify: policy %s not found", number)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Classify: repository error for policy %s: %v", number, err)
		return nil, fmt.Errorf("%w: Classify - repository error: %v", ErrInternal, err)
	}

	category := policy.Classify(s.now())
	s.metrics.PolicyClassified(string(category))

	s.logger.Info("Classify: policy %s status=%s classified as %s", number, policy.Status, category)
	return &models.ClassifyResponse{
		Category: category,
		Prefix:   policy.Prefix(domain.PolicyPrefixLength),
	}, nil
}
