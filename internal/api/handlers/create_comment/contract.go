package create_comment

import (
	"context"

	"github.com/m04kA/SMC-ShareIt/internal/service/items/models"
)

type ItemService interface {
	AddComment(ctx context.Context, authorID, itemID int64, req *models.CreateCommentRequest) (*models.CommentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
