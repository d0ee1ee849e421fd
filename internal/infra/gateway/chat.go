package gateway

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/chat"
)

type startChatRequest struct {
	CustomerPhone string `json:"customerPhone"`
	Message       string `json:"message,omitempty"`
}

type chatSessionResponse struct {
	Session *ChatSessionDTO `json:"session"`
}

func (c *Client) StartChatSession(ctx context.Context, customerPhone, message string) (*chat.Session, error) {
	var resp chatSessionResponse
	err := c.do(ctx, http.MethodPost, "/api/chat/start", nil, startChatRequest{
		CustomerPhone: customerPhone,
		Message:       message,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return toChatSession(resp.Session), nil
}

func (c *Client) GetChatSession(ctx context.Context, sessionID string) (*chat.Session, error) {
	var resp chatSessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/chat/session/"+url.PathEscape(sessionID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return toChatSession(resp.Session), nil
}

func (c *Client) CloseChatSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "/api/chat/session/"+url.PathEscape(sessionID)+"/close", nil, nil, nil)
}

func toChatSession(dto *ChatSessionDTO) *chat.Session {
	if dto == nil {
		return nil
	}
	s := &chat.Session{
		ID:            dto.ID,
		Status:        chat.SessionStatus(dto.Status),
		CustomerPhone: dto.CustomerPhone,
	}
	for _, m := range dto.Messages {
		msg := chat.Message{ID: m.ID, Sender: m.Sender, Body: m.Body}
		if m.CreatedAt != nil {
			msg.CreatedAt = *m.CreatedAt
		}
		s.Messages = append(s.Messages, msg)
	}
	return s
}
