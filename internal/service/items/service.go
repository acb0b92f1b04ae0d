package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	bookingModels "github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareIt/internal/service/items/models"
)

// Service каталог вещей и отзывов
type Service struct {
	itemRepo     ItemRepository
	userRepo     UserRepository
	requestRepo  RequestRepository
	commentRepo  CommentRepository
	bookings     BookingEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	itemRepo ItemRepository,
	userRepo UserRepository,
	requestRepo RequestRepository,
	commentRepo CommentRepository,
	bookings BookingEngine,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		commentRepo:  commentRepo,
		bookings:     bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create добавляет вещь владельца ownerID
// Если указан requestId, запрос должен существовать
func (s *Service) Create(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: owner=%d, name=%q", ownerID, req.Name)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" || req.Available == nil {
		s.logger.Warn("Create: name, description and available are required")
		return nil, ErrInvalidInput
	}

	if _, err := s.getUser(ctx, "Create", ownerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("Create: request id=%d not found", *req.RequestID)
				return nil, ErrRequestNotFound
			}
			s.logger.Error("Create: repository error for request id=%d: %v", *req.RequestID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	item, err := s.itemRepo.Create(ctx, req.ToDomainItem(ownerID))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: item id=%d created", item.ID)
	return models.FromDomainItem(item), nil
}

// Update частично обновляет вещь; изменять может только владелец
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	item, err := s.getItem(ctx, "Update", itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID != ownerID {
		s.logger.Warn("Update: user=%d is not owner of item id=%d", ownerID, itemID)
		return nil, ErrItemNotFound
	}

	req.ToDomainPatch().Apply(item)

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("Update: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: item id=%d updated", itemID)
	return models.FromDomainItem(item), nil
}

// GetByID карточка вещи с отзывами; бронирования видит только владелец
func (s *Service) GetByID(ctx context.Context, userID, itemID int64) (*models.ItemResponse, error) {
	if _, err := s.getUser(ctx, "GetByID", userID); err != nil {
		return nil, err
	}

	item, err := s.getItem(ctx, "GetByID", itemID)
	if err != nil {
		return nil, err
	}

	result, err := s.enrich(ctx, []*domain.Item{item}, item.OwnerID == userID)
	if err != nil {
		return nil, err
	}

	return result[0], nil
}

// ListByOwner вещи пользователя с бронированиями и отзывами
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemResponse, error) {
	if _, err := s.getUser(ctx, "ListByOwner", ownerID); err != nil {
		return nil, err
	}

	page := domain.Page{From: from, Size: size}
	if !page.Valid() {
		return nil, ErrInvalidPagination
	}

	items, err := s.itemRepo.ListByOwner(ctx, ownerID, page)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	return s.enrich(ctx, items, true)
}

// Search доступные вещи по подстроке; пустой текст даёт пустой список
func (s *Service) Search(ctx context.Context, text string, from, size int) ([]*models.ItemResponse, error) {
	page := domain.Page{From: from, Size: size}
	if !page.Valid() {
		return nil, ErrInvalidPagination
	}

	if strings.TrimSpace(text) == "" {
		return make([]*models.ItemResponse, 0), nil
	}

	items, err := s.itemRepo.Search(ctx, text, page)
	if err != nil {
		s.logger.Error("Search: repository error for text=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, models.FromDomainItem(item))
	}

	s.logger.Info("Search: found %d items for text=%q", len(result), text)
	return result, nil
}

// AddComment сохраняет отзыв, если у автора есть завершившееся бронирование вещи
func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, req *models.CreateCommentRequest) (*models.CommentResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrInvalidInput
	}

	author, err := s.getUser(ctx, "AddComment", authorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.getItem(ctx, "AddComment", itemID); err != nil {
		return nil, err
	}

	if err := s.bookings.CheckCanComment(ctx, itemID, authorID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, &domain.Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("AddComment: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}
	comment.AuthorName = author.Name

	s.logger.Info("AddComment: comment id=%d added to item id=%d by user=%d", comment.ID, itemID, authorID)
	return models.FromDomainComment(comment), nil
}

// enrich добавляет к вещам отзывы и, если withBookings, последнее/следующее бронирование
func (s *Service) enrich(ctx context.Context, items []*domain.Item, withBookings bool) ([]*models.ItemResponse, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	comments, err := s.commentRepo.ListByItems(ctx, ids)
	if err != nil {
		s.logger.Error("enrich: comments for %d items: %v", len(ids), err)
		return nil, fmt.Errorf("%w: enrich - repository error: %v", ErrInternal, err)
	}

	var last, next map[int64]*domain.BookingSummary
	if withBookings && len(ids) > 0 {
		last, next, err = s.bookings.Neighbours(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	result := make([]*models.ItemResponse, 0, len(items))
	for _, item := range items {
		resp := models.FromDomainItem(item)
		resp.Comments = models.FromDomainComments(comments[item.ID])
		resp.LastBooking = bookingModels.FromDomainSummary(last[item.ID])
		resp.NextBooking = bookingModels.FromDomainSummary(next[item.ID])
		result = append(result, resp)
	}

	return result, nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}

func (s *Service) getItem(ctx context.Context, op string, id int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("%s: item id=%d not found", op, id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("%s: repository error for item id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return item, nil
}
