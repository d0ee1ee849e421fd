package usecase

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/chat"
	"storefront/internal/infra/kvstore"
	"storefront/internal/pkg/errs"
)

// ChatGateway is the gateway port for the support-chat session endpoints.
// The message transport (socket) is a separate collaborator that feeds this
// service through AppendMessage and HandleSessionClosed.
type ChatGateway interface {
	StartChatSession(ctx context.Context, customerPhone, message string) (*chat.Session, error)
	GetChatSession(ctx context.Context, sessionID string) (*chat.Session, error)
	CloseChatSession(ctx context.Context, sessionID string) error
}

// ChatService keeps the customer's support-chat session. The session id is
// persisted so a returning visitor resumes the same conversation; anything
// the server reports as closed is discarded locally, including history.
type ChatService struct {
	gateway ChatGateway
	store   kvstore.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	session *chat.Session
}

func NewChatService(gateway ChatGateway, store kvstore.Store, logger *slog.Logger) *ChatService {
	return &ChatService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Hydrate restores the persisted session, if any. A missing, failed or
// closed session resets to the "start new session" state without error.
func (s *ChatService) Hydrate(ctx context.Context) {
	id, ok := s.store.Get(kvstore.KeyChatSession)
	if !ok || id == "" {
		return
	}
	session, err := s.gateway.GetChatSession(ctx, id)
	if err != nil || session.Closed() {
		s.discard()
		return
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *ChatService) Start(ctx context.Context, customerPhone, message string) (*chat.Session, error) {
	session, err := s.gateway.StartChatSession(ctx, customerPhone, message)
	if err != nil {
		return nil, errs.Wrap(err, "failed to start chat session")
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	if session != nil {
		s.store.Set(kvstore.KeyChatSession, session.ID)
	}
	return session, nil
}

// Close ends the session server-side, then discards it locally. The local
// discard happens even when the close call fails: the user asked to leave.
func (s *ChatService) Close(ctx context.Context) error {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()
	if session == nil {
		return errs.ErrNoChatSession
	}

	err := s.gateway.CloseChatSession(ctx, session.ID)
	s.discard()
	if err != nil {
		return errs.Wrap(err, "failed to close chat session")
	}
	return nil
}

// Session returns the cached session, or nil when none is active.
func (s *ChatService) Session() *chat.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// AppendMessage is invoked by the transport when a message event arrives for
// the active session. Events for other sessions are ignored.
func (s *ChatService) AppendMessage(sessionID string, msg chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.ID != sessionID {
		return
	}
	s.session.Messages = append(s.session.Messages, msg)
}

// HandleSessionClosed is invoked by the transport on a session-closed
// notification: the cached session id and message history are dropped and the
// widget falls back to the "start new session" state.
func (s *ChatService) HandleSessionClosed(sessionID string) {
	s.mu.Lock()
	current := s.session
	s.mu.Unlock()
	if current == nil || current.ID != sessionID {
		return
	}
	s.logger.Debug("chat session closed by server", "session_id", sessionID)
	s.discard()
}

func (s *ChatService) discard() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.store.Set(kvstore.KeyChatSession, "")
}
