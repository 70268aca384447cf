package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// NotificationPage is one page of the feed plus pagination metadata.
type NotificationPage struct {
	Items      []domain.Notification `json:"notifications"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
	TotalCount int                   `json:"totalCount"`
}

// NotificationGateway binds the remote notification endpoints.
type NotificationGateway interface {
	List(ctx context.Context, token string, page, pageSize int) (*NotificationPage, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkRead(ctx context.Context, token string, id int64) error
	MarkAllRead(ctx context.Context, token string) error
}
