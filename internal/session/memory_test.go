package session

import (
	"sync"
	"testing"
	"time"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get("+911111111111"); ok {
		t.Fatal("expected no session before upsert")
	}

	sess := &models.Session{Sender: "+911111111111", Stage: models.StageAwaitingLanguage, CreatedAt: time.Now()}
	store.Upsert(sess.Sender, sess)

	got, ok := store.Get(sess.Sender)
	if !ok || got.Stage != models.StageAwaitingLanguage {
		t.Fatalf("expected stored session, got %v (ok=%v)", got, ok)
	}
	if store.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Count())
	}

	store.Remove(sess.Sender)
	if _, ok := store.Get(sess.Sender); ok {
		t.Fatal("expected session removed")
	}

	// Removing again must stay a no-op.
	store.Remove(sess.Sender)
	if store.Count() != 0 {
		t.Fatalf("expected 0 sessions, got %d", store.Count())
	}
}

// LockSender must serialize read-modify-write cycles for one sender: every
// goroutine's increment survives.
func TestLockSender_SerializesSameSender(t *testing.T) {
	store := NewMemoryStore()
	store.Upsert("+919999999999", &models.Session{Sender: "+919999999999"})

	const writers = 50
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.LockSender("+919999999999")
			defer unlock()

			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != writers {
		t.Fatalf("lost updates: expected %d, got %d", writers, counter)
	}
}

// Distinct senders must not contend on each other's lock.
func TestLockSender_DistinctSendersIndependent(t *testing.T) {
	store := NewMemoryStore()

	unlockA := store.LockSender("+911000000001")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := store.LockSender("+911000000002")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second sender blocked on first sender's lock")
	}
}
