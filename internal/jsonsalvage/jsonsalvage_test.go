package jsonsalvage

import "testing"

func TestParseStrict(t *testing.T) {
	obj, ok := Parse(`{"a": 1, "b": "x"}`)
	if !ok {
		t.Fatal("expected ok")
	}
	if obj["a"].(float64) != 1 {
		t.Fatalf("unexpected a: %v", obj["a"])
	}
}

func TestParseSalvagesFencedJSON(t *testing.T) {
	text := "Here is the result:\n```json\n{\"salary_min\": 1000, \"salary_max\": 2000}\n```\nthanks"
	obj, ok := Parse(text)
	if !ok {
		t.Fatal("expected salvage to succeed")
	}
	if obj["salary_min"].(float64) != 1000 {
		t.Fatalf("unexpected salary_min: %v", obj["salary_min"])
	}
}

func TestParseFailsOnNoObject(t *testing.T) {
	_, ok := Parse("not json at all")
	if ok {
		t.Fatal("expected failure")
	}
}

func TestParseNeverPanicsOnGarbageBraces(t *testing.T) {
	_, ok := Parse("{ this is { not json } at all }")
	if ok {
		t.Fatal("expected failure, not a panic")
	}
}
