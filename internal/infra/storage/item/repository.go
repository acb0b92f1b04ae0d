package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	"github.com/m04kA/SMC-ShareIt/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareIt/pkg/psqlbuilder"
)

// Repository репозиторий каталога вещей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вещей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет вещь в каталог
func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает вещь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectItems().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// Update сохраняет изменяемые поля вещи
func (r *Repository) Update(ctx context.Context, item *domain.Item) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("available", item.Available).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// ListByOwner вещи владельца по возрастанию ID
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error) {
	return r.list(ctx, "ListByOwner", buildOwnerQuery(ownerID, page))
}

// Search доступные вещи по подстроке в названии или описании
func (r *Repository) Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error) {
	return r.list(ctx, "Search", buildSearchQuery(text, page))
}

// ListByRequests вещи, добавленные в ответ на запросы, сгруппированные по request_id
func (r *Repository) ListByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*domain.Item, error) {
	result := make(map[int64][]*domain.Item, len(requestIDs))
	if len(requestIDs) == 0 {
		return result, nil
	}

	items, err := r.list(ctx, "ListByRequests", buildByRequestsQuery(requestIDs))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		result[*item.RequestID] = append(result[*item.RequestID], item)
	}

	return result, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	var requestID sql.NullInt64

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Available,
		&item.OwnerID,
		&requestID,
	)
	if err != nil {
		return nil, err
	}

	if requestID.Valid {
		item.RequestID = &requestID.Int64
	}

	return &item, nil
}
