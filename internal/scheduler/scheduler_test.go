package scheduler

import "testing"

func TestParseHoursDiscardsInvalidEntries(t *testing.T) {
	got := parseHours("6, 12, 18, 27, abc, -1, 9")
	want := []int{6, 12, 18, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseHoursEmptyReturnsNil(t *testing.T) {
	got := parseHours("abc, 99, -5")
	if len(got) != 0 {
		t.Fatalf("expected no valid hours, got %v", got)
	}
}
