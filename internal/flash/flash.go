// Package flash provides one-shot notification messages for form outcomes.
// A message is stored as JSON in Valkey under a random ID carried by a
// short-lived cookie, and is consumed (deleted) on first read, so a
// success or error toast shows exactly once after the redirect.
package flash

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the cookie that points at the pending notification.
	CookieName = "hfm_flash"

	// DefaultTTL bounds how long an unread notification survives.
	DefaultTTL = 5 * time.Minute

	// keyPrefix namespaces flash keys in Valkey.
	keyPrefix = "flash:"

	// idLength is the byte length of the random flash ID.
	idLength = 16
)

// Message is a transient notification shown once to the visitor.
type Message struct {
	Type    string `json:"type"` // "success" or "error"
	Message string `json:"message"`
}

// Store manages flash message lifecycle in Valkey. A nil client disables
// notifications (logged); the site itself keeps working.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a flash store backed by the given Valkey client,
// which may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

// Success queues a success notification for the next page view.
func (s *Store) Success(ctx context.Context, w http.ResponseWriter, message string) {
	s.put(ctx, w, Message{Type: "success", Message: message})
}

// Error queues an error notification for the next page view.
func (s *Store) Error(ctx context.Context, w http.ResponseWriter, message string) {
	s.put(ctx, w, Message{Type: "error", Message: message})
}

func (s *Store) put(ctx context.Context, w http.ResponseWriter, msg Message) {
	if s.client == nil {
		slog.Warn("flash dropped: valkey not configured", "type", msg.Type)
		return
	}

	id, err := generateID()
	if err != nil {
		slog.Error("flash id generation failed", "error", err)
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		slog.Error("flash marshal failed", "error", err)
		return
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		slog.Warn("flash store failed", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
}

// Take retrieves and consumes the pending notification for this visitor,
// clearing both the Valkey entry and the cookie. Returns nil when there is
// nothing to show.
func (s *Store) Take(ctx context.Context, w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Expire the cookie regardless of what Valkey holds.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if s.client == nil {
		return nil
	}

	key := keyPrefix + cookie.Value
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("flash get failed", "error", err)
		return nil
	}
	s.client.Del(ctx, key)

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("flash unmarshal failed", "error", err)
		return nil
	}
	return &msg
}

// generateID creates a cryptographically random flash identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("flash id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
