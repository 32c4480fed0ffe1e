package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
	"github.com/vyapaar-tech/orderbot-backend/internal/parser"
	"github.com/vyapaar-tech/orderbot-backend/internal/session"
	"github.com/vyapaar-tech/orderbot-backend/internal/storage"
	"github.com/vyapaar-tech/orderbot-backend/internal/texts"
	"github.com/vyapaar-tech/orderbot-backend/internal/validation"
)

// persistAttempts is how many times an order write is retried locally
// before the failure is reported back to the sender.
const persistAttempts = 3

// ConversationService drives the per-sender ordering dialogue: language
// selection, free-text order input, delivery window, then a priced summary
// recorded through the storage layer.
type ConversationService struct {
	store    storage.Store
	sessions session.Store
	validate *validator.Validate

	// strictDeliveryDays rejects non-numeric delivery-days input with a
	// re-prompt. Off by default: the original flow accepts free-form
	// answers like "next week" verbatim.
	strictDeliveryDays bool
}

// NewConversationService creates a new conversation service
func NewConversationService(store storage.Store, sessions session.Store) *ConversationService {
	return &ConversationService{
		store:              store,
		sessions:           sessions,
		validate:           validation.New(),
		strictDeliveryDays: os.Getenv("STRICT_DELIVERY_DAYS") == "true",
	}
}

// Sessions exposes the session store (for monitoring endpoints).
func (s *ConversationService) Sessions() session.Store {
	return s.sessions
}

// ProcessMessage handles one inbound message and returns the reply text.
// The per-sender lock is held for the whole cycle so concurrent messages
// from the same sender serialize; distinct senders never contend.
func (s *ConversationService) ProcessMessage(from, body string) (string, error) {
	sender := strings.TrimSpace(strings.TrimPrefix(from, "whatsapp:"))
	msg := strings.TrimSpace(body)

	unlock := s.sessions.LockSender(sender)
	defer unlock()

	sess, ok := s.sessions.Get(sender)
	if !ok {
		// First contact: any message content gets the welcome prompt.
		s.sessions.Upsert(sender, &models.Session{
			Sender:    sender,
			Stage:     models.StageAwaitingLanguage,
			CreatedAt: time.Now(),
		})
		log.Printf("📱 New session for %s", sender)
		return texts.For(texts.DefaultLanguage).Welcome, nil
	}

	t := texts.For(sess.Language)

	switch sess.Stage {
	case models.StageAwaitingLanguage:
		lang, ok := texts.LanguageForCode(msg)
		if !ok {
			// Re-prompt without advancing; language is the only stage
			// with a closed input alphabet.
			return t.InvalidLang, nil
		}
		reply, err := s.renderProductList(texts.For(lang))
		if err != nil {
			return "", err
		}
		sess.Language = lang
		sess.Stage = models.StageAwaitingOrder
		s.sessions.Upsert(sender, sess)
		return reply, nil

	case models.StageShowingProducts:
		// Legacy transitional stage: prompt for the order again.
		sess.Stage = models.StageAwaitingOrder
		s.sessions.Upsert(sender, sess)
		return t.EnterProducts, nil

	case models.StageAwaitingOrder:
		// Any text is valid here; an empty parse surfaces later as
		// not-found summary lines.
		sess.Items = parser.Parse(msg)
		sess.Stage = models.StageAwaitingDeliveryDays
		s.sessions.Upsert(sender, sess)
		return t.AskDays, nil

	case models.StageAwaitingDeliveryDays:
		if s.strictDeliveryDays {
			if err := s.validate.Var(msg, "required,numeric"); err != nil {
				return t.AskDays, nil
			}
		}
		return s.finalizeOrder(sess, msg, t)
	}

	log.Printf("❗ Invariant violation: session for %s in stage %s", sender, sess.Stage)
	return texts.Retry, nil
}

// renderProductList reads the catalog and builds the product listing plus
// the order prompt. This read is independent of the pricing read at summary
// time, so prices may drift between the two.
func (s *ConversationService) renderProductList(t texts.Table) (string, error) {
	products, err := s.store.ListProducts()
	if err != nil {
		return "", fmt.Errorf("listing products: %w", err)
	}

	var b strings.Builder
	b.WriteString(t.ProductsIntro)
	for _, p := range products {
		fmt.Fprintf(&b, "🧾 %s\n💰 ₹%s प्रति यूनिट\n\n", p.Name, formatAmount(p.Price))
	}
	b.WriteString(t.EnterProducts)
	return b.String(), nil
}

// finalizeOrder prices the session's items against a fresh catalog read,
// records the order, and only then removes the session. On a persistence
// failure the session is left untouched so the sender can retry without
// restarting the dialogue.
func (s *ConversationService) finalizeOrder(sess *models.Session, deliveryDays string, t texts.Table) (string, error) {
	products, err := s.store.ListProducts()
	if err != nil {
		return "", fmt.Errorf("listing products for summary: %w", err)
	}

	byName := make(map[string]*models.Product, len(products))
	for _, p := range products {
		byName[p.NormalizedName()] = p
	}

	var b strings.Builder
	b.WriteString(t.OrderSummary)
	total := 0.0
	for _, item := range sess.Items {
		p, found := byName[item.Name]
		if !found {
			fmt.Fprintf(&b, "%s - ❌ उत्पाद नहीं मिला\n", item.Name)
			continue
		}
		amount := float64(item.Quantity) * p.Price
		fmt.Fprintf(&b, "%s - %d × ₹%s = ₹%s\n", item.Name, item.Quantity, formatAmount(p.Price), formatAmount(amount))
		total += amount
	}
	fmt.Fprintf(&b, "\n🕒 डिलीवरी: %s दिन में\n💰 कुल: ₹%s\n\n", deliveryDays, formatAmount(total))
	b.WriteString(t.Thanks)

	order := &models.Order{
		OrderID:      uuid.NewString(),
		Sender:       sess.Sender,
		Language:     string(sess.Language),
		DeliveryDays: deliveryDays,
		Total:        total,
		PlacedAt:     time.Now(),
	}
	if err := order.SetItems(sess.Items); err != nil {
		return "", fmt.Errorf("encoding order items: %w", err)
	}
	if err := s.validate.Struct(order); err != nil {
		return "", fmt.Errorf("invalid order record: %w", err)
	}

	var appendErr error
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		if _, appendErr = s.store.AppendOrder(order); appendErr == nil {
			break
		}
		log.Printf("❌ Order write attempt %d/%d for %s failed: %v", attempt, persistAttempts, sess.Sender, appendErr)
	}
	if appendErr != nil {
		// Session stays intact: the sender re-sends the delivery days
		// instead of restarting from the language prompt.
		return "", fmt.Errorf("recording order for %s: %w", sess.Sender, appendErr)
	}

	s.sessions.Remove(sess.Sender)
	log.Printf("✅ Order %s recorded for %s (total ₹%s)", order.OrderID, sess.Sender, formatAmount(total))
	return b.String(), nil
}

// formatAmount renders prices the way the summary shows them: no trailing
// zeros, so ₹5 stays ₹5 and ₹7.50 stays ₹7.5.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
