package chat

import "time"

type SessionStatus string

const (
	StatusOpen   SessionStatus = "open"
	StatusClosed SessionStatus = "closed"
)

type Message struct {
	ID        string
	Sender    string
	Body      string
	CreatedAt time.Time
}

type Session struct {
	ID            string
	Status        SessionStatus
	CustomerPhone string
	Messages      []Message
}

func (s *Session) Closed() bool {
	return s == nil || s.Status == StatusClosed
}
