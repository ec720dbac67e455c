package app_test

import (
	"testing"

	"github.com/daviderapp/travel-aggregator/internal/app"
)

func TestFirstJSONObject_SurroundingProse(t *testing.T) {
	in := "Sure! Here is the extraction:\n```json\n{\"destination\": \"parigi\", \"guests\": 2}\n```\nHope that helps."
	got, err := app.FirstJSONObject(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != `{"destination": "parigi", "guests": 2}` {
		t.Fatalf("unexpected object: %s", got)
	}
}

func TestFirstJSONObject_EscapedQuoteInString(t *testing.T) {
	in := `prefix {"note": "say \"hi\"", "n": 1} suffix`
	got, err := app.FirstJSONObject(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != `{"note": "say \"hi\"", "n": 1}` {
		t.Fatalf("unexpected object: %s", got)
	}
}

func TestFirstJSONObject_BracesInsideStrings(t *testing.T) {
	in := `{"a": "curly } inside {", "b": {"c": 3}}`
	got, err := app.FirstJSONObject(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != in {
		t.Fatalf("unexpected object: %s", got)
	}
}

func TestFirstJSONObject_TruncatedReply(t *testing.T) {
	in := `{"destination": "parigi", "preferences": {"amenities": ["spa"`
	if _, err := app.FirstJSONObject(in); err == nil {
		t.Fatalf("expected error for truncated object")
	}
}

func TestFirstJSONObject_NoObject(t *testing.T) {
	if _, err := app.FirstJSONObject("no json here at all"); err == nil {
		t.Fatalf("expected error when no object present")
	}
}
