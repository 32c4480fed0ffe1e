// Package session tracks per-sender conversation state.
package session

import "github.com/vyapaar-tech/orderbot-backend/internal/models"

// Store keeps one session per active sender. Implementations must let
// concurrent requests for distinct senders proceed independently while
// LockSender serializes read-modify-write cycles for a single sender.
//
// The in-memory implementation below matches the original system's
// process-local semantics; a durable store can be substituted here without
// touching the conversation engine.
type Store interface {
	// Get returns the sender's session, if any.
	Get(sender string) (*models.Session, bool)

	// Upsert creates or replaces the sender's session.
	Upsert(sender string, sess *models.Session)

	// Remove deletes the sender's session. Removing an absent session is
	// a no-op, so teardown stays idempotent.
	Remove(sender string)

	// LockSender acquires the per-sender lock and returns its release
	// function. Callers hold the lock across the full message-handling
	// cycle so concurrent messages from one sender cannot lose updates.
	LockSender(sender string) (unlock func())

	// Count reports the number of active sessions.
	Count() int
}
