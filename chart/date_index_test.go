package chart

import "testing"

func TestDateIndex_PositionOf(t *testing.T) {
	// Arrange
	index := NewDateIndex([]string{"2024-01-01", "2024-01-02", "2024-01-03"})

	// Act / Assert
	pos, ok := index.PositionOf("2024-01-02")
	if !ok {
		t.Fatalf("Expected 2024-01-02 to be found")
	}
	if pos != 1 {
		t.Errorf("Expected position 1, got %d", pos)
	}

	if _, ok := index.PositionOf("2024-02-01"); ok {
		t.Errorf("Expected 2024-02-01 to be absent")
	}
}

func TestDateIndex_DayAt(t *testing.T) {
	// Arrange
	index := NewDateIndex([]string{"2024-01-01", "2024-01-02"})

	// Act / Assert
	day, ok := index.DayAt(0)
	if !ok || day != "2024-01-01" {
		t.Errorf("Expected 2024-01-01 at position 0, got %q (ok=%v)", day, ok)
	}

	if _, ok := index.DayAt(2); ok {
		t.Errorf("Expected position 2 to be out of range")
	}
	if _, ok := index.DayAt(-1); ok {
		t.Errorf("Expected position -1 to be out of range")
	}
}

func TestDateIndex_PreservesInputOrder(t *testing.T) {
	// The index must never sort; the caller owns the ordering.
	days := []string{"2024-03-10", "2024-03-08", "2024-03-09"}
	index := NewDateIndex(days)

	if index.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", index.Len())
	}
	for i, expected := range days {
		day, ok := index.DayAt(i)
		if !ok || day != expected {
			t.Errorf("Expected %s at position %d, got %q", expected, i, day)
		}
	}
}
