// Package kvstore is the durable key-value port backing client state
// (cart snapshot, dismissed announcements, chat session id). The contract is
// deliberately forgiving: reads that fail are misses, writes that fail are
// no-ops. Callers always stay correct in memory for the session.
package kvstore

type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Well-known keys used by the storefront core.
const (
	KeyCart                   = "cart"
	KeyDismissedAnnouncements = "dismissed_announcements"
	KeyChatSession            = "chat_session"
)
