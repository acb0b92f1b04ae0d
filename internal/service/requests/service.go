package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareIt/internal/service/requests/models"
)

// Service запросы на вещи
type Service struct {
	requestRepo  RequestRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(requestRepo RequestRepository, itemRepo ItemRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create сохраняет запрос с created = now
func (s *Service) Create(ctx context.Context, requesterID int64, req *models.CreateRequestRequest) (*models.RequestResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		s.logger.Warn("Create: empty description from user=%d", requesterID)
		return nil, ErrInvalidInput
	}

	if err := s.ensureUser(ctx, "Create", requesterID); err != nil {
		return nil, err
	}

	created, err := s.requestRepo.Create(ctx, &domain.Request{
		Description: req.Description,
		RequesterID: requesterID,
		Created:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: request id=%d created by user=%d", created.ID, requesterID)
	return models.FromDomainRequest(created), nil
}

// GetByID запрос с вещами; смотреть может любой существующий пользователь
func (s *Service) GetByID(ctx context.Context, userID, requestID int64) (*models.RequestResponse, error) {
	if err := s.ensureUser(ctx, "GetByID", userID); err != nil {
		return nil, err
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.attachItems(ctx, []*domain.Request{req}); err != nil {
		return nil, err
	}

	return models.FromDomainRequest(req), nil
}

// ListMine запросы пользователя, сначала новые
func (s *Service) ListMine(ctx context.Context, requesterID int64) ([]*models.RequestResponse, error) {
	if err := s.ensureUser(ctx, "ListMine", requesterID); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	if err := s.attachItems(ctx, reqs); err != nil {
		return nil, err
	}

	return models.FromDomainRequestList(reqs), nil
}

// ListOthers запросы других пользователей постранично
// Страница выбирается как from / size, поэтому from округляется вниз до кратного size
func (s *Service) ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*models.RequestResponse, error) {
	if err := s.ensureUser(ctx, "ListOthers", requesterID); err != nil {
		return nil, err
	}

	page := domain.Page{From: from, Size: size}
	if !page.Valid() {
		s.logger.Warn("ListOthers: invalid pagination from=%d, size=%d", from, size)
		return nil, ErrInvalidPagination
	}

	reqs, err := s.requestRepo.ListOthers(ctx, requesterID, page.PageOffset(), page.Limit())
	if err != nil {
		s.logger.Error("ListOthers: repository error for user=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: ListOthers - repository error: %v", ErrInternal, err)
	}

	if err := s.attachItems(ctx, reqs); err != nil {
		return nil, err
	}

	return models.FromDomainRequestList(reqs), nil
}

// attachItems заполняет Items вещами с item.request_id = request.id
func (s *Service) attachItems(ctx context.Context, reqs []*domain.Request) error {
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}

	byRequest, err := s.itemRepo.ListByRequests(ctx, ids)
	if err != nil {
		s.logger.Error("attachItems: repository error for %d requests: %v", len(ids), err)
		return fmt.Errorf("%w: attachItems - repository error: %v", ErrInternal, err)
	}

	for _, r := range reqs {
		r.Items = byRequest[r.ID]
	}

	return nil
}

func (s *Service) ensureUser(ctx context.Context, op string, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
