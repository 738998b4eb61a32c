package shopping

import (
	"bytes"
	"fmt"
	"testing"
)

func TestRenderProducesPDF(t *testing.T) {
	doc, err := Render([]Line{
		{Name: "Flour", MeasurementUnit: "g", Amount: 350},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 50},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRenderEmptyList(t *testing.T) {
	doc, err := Render(nil)
	if err != nil {
		t.Fatalf("Render failed on empty list: %v", err)
	}
	if len(doc) == 0 {
		t.Error("empty list produced an empty document")
	}
}

func TestRenderFlowsToMultiplePages(t *testing.T) {
	var lines []Line
	for i := 0; i < 120; i++ {
		lines = append(lines, Line{
			Name:            fmt.Sprintf("Ingredient %03d", i),
			MeasurementUnit: "g",
			Amount:          i + 1,
		})
	}

	doc, err := Render(lines)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if n := bytes.Count(doc, []byte("/Type /Page")); n < 2 {
		t.Errorf("expected at least 2 page objects, found %d", n)
	}
}
