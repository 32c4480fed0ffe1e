// Package parser turns free-text order messages into product lines.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

// A line is a run of non-digit, non-space, non-comma characters followed by
// a quantity. Anything else in the message is ignored.
var linePattern = regexp.MustCompile(`([^\d\s,]+)\s*(\d+)`)

// Parse extracts (product, quantity) lines from text. Names are lowercased
// and trimmed; a repeated name keeps its first position but takes the last
// quantity seen. Unparseable text yields no lines rather than an error —
// unknown items surface later as not-found summary lines instead of
// dead-ending the conversation.
func Parse(text string) models.OrderItems {
	var items models.OrderItems
	index := make(map[string]int)

	for _, match := range linePattern.FindAllStringSubmatch(text, -1) {
		name := strings.ToLower(strings.TrimSpace(match[1]))
		qty, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if i, ok := index[name]; ok {
			items[i].Quantity = qty
			continue
		}
		index[name] = len(items)
		items = append(items, models.OrderItem{Name: name, Quantity: qty})
	}

	return items
}
