package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// NotificationAPI implements ports.NotificationGateway.
type NotificationAPI struct {
	c *Client
}

func NewNotificationAPI(c *Client) *NotificationAPI { return &NotificationAPI{c: c} }

func (a *NotificationAPI) List(ctx context.Context, token string, page, pageSize int) (*ports.NotificationPage, error) {
	var out ports.NotificationPage
	path := fmt.Sprintf("/api/notifications?page=%d&limit=%d", page, pageSize)
	_, err := a.c.do(ctx, "notifications", http.MethodGet, path, token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *NotificationAPI) UnreadCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	_, err := a.c.do(ctx, "notifications_unread", http.MethodGet, "/api/notifications/unread-count", token, nil, &out)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (a *NotificationAPI) MarkRead(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/notifications/%d/read", id)
	_, err := a.c.do(ctx, "notifications_mark_read", http.MethodPost, path, token, nil, nil)
	return err
}

func (a *NotificationAPI) MarkAllRead(ctx context.Context, token string) error {
	_, err := a.c.do(ctx, "notifications_mark_all", http.MethodPost, "/api/notifications/read-all", token, nil, nil)
	return err
}
