package request

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

var requestColumns = []string{"id", "description", "requester_id", "created"}

// Repository репозиторий запросов на вещи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запрос, created задаётся вызывающим
func (r *Repository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("requests").
		Columns("description", "requester_id", "created").
		Values(req.Description, req.RequesterID, req.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.Request
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// ListByRequester запросы пользователя, сначала новые
func (r *Repository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	builder := psqlbuilder.Select(requestColumns...).
		From("requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC")

	return r.list(ctx, "ListByRequester", builder)
}

// ListOthers запросы всех пользователей, кроме requesterID, сначала новые
// offset уже выровнен по началу страницы
func (r *Repository) ListOthers(ctx context.Context, requesterID int64, offset, limit uint64) ([]*domain.Request, error) {
	builder := psqlbuilder.Select(requestColumns...).
		From("requests").
		Where(squirrel.NotEq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC").
		Offset(offset).
		Limit(limit)

	return r.list(ctx, "ListOthers", builder)
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Request, error) {
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

	requests := make([]*domain.Request, 0)
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("%w: %s - scan request: %v", ErrScanRow, op, err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return requests, nil
}
