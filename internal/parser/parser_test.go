package parser

import (
	"reflect"
	"testing"
)

func TestParse_WellFormedPairs(t *testing.T) {
	items := Parse("plate 100, cup 50")

	want := map[string]int{"plate": 100, "cup": 50}
	if got := items.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_DuplicateTakesLastQuantity(t *testing.T) {
	items := Parse("plate 100, cup 50, plate 20")

	want := map[string]int{"plate": 20, "cup": 50}
	if got := items.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// The repeated name keeps its first position.
	if len(items) != 2 || items[0].Name != "plate" || items[1].Name != "cup" {
		t.Fatalf("expected [plate cup] in first-seen order, got %v", items)
	}
	if items[0].Quantity != 20 {
		t.Fatalf("expected last quantity 20 for plate, got %d", items[0].Quantity)
	}
}

func TestParse_NormalizesNames(t *testing.T) {
	items := Parse("PLATE 10, Cup2")

	want := map[string]int{"plate": 10, "cup": 2}
	if got := items.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_UnparseableTextYieldsNoItems(t *testing.T) {
	for _, text := range []string{"", "hello there", "please deliver soon", ",,,  "} {
		if items := Parse(text); len(items) != 0 {
			t.Fatalf("expected no items for %q, got %v", text, items)
		}
	}
}

func TestParse_DevanagariNames(t *testing.T) {
	items := Parse("प्लेट 100, कप 50")

	want := map[string]int{"प्लेट": 100, "कप": 50}
	if got := items.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
