package models

import "time"

// Stage is the position of a session in the fixed ordering dialogue.
// Stages only move forward; the single exception is an invalid language
// selection, which re-prompts without advancing.
type Stage int

const (
	StageAwaitingLanguage Stage = iota
	StageShowingProducts // legacy transitional stage, re-prompts for the order
	StageAwaitingOrder
	StageAwaitingDeliveryDays
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingLanguage:
		return "awaiting_language"
	case StageShowingProducts:
		return "showing_products"
	case StageAwaitingOrder:
		return "awaiting_order"
	case StageAwaitingDeliveryDays:
		return "awaiting_delivery_days"
	case StageCompleted:
		return "completed"
	}
	return "unknown"
}

// Language is a supported reply language. The zero value means the sender
// has not chosen one yet.
type Language string

const (
	LanguageHindi    Language = "hindi"
	LanguageGujarati Language = "gujarati"
)

// Session holds per-sender conversation state between messages. Sessions
// live in process memory only and are removed once an order is recorded;
// abandoned sessions are kept indefinitely (no expiry).
type Session struct {
	Sender       string     `json:"sender"`
	Stage        Stage      `json:"stage"`
	Language     Language   `json:"language,omitempty"`
	Items        OrderItems `json:"items,omitempty"`
	DeliveryDays string     `json:"delivery_days,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
