package main

import (
	"slices"
	"testing"
)

func TestSeedRange(t *testing.T) {
	seeds, err := seedRange(7, 3)
	if err != nil {
		t.Fatalf("seedRange: %v", err)
	}
	if !slices.Equal(seeds, []int64{7, 8, 9}) {
		t.Fatalf("unexpected seeds %v", seeds)
	}
	for _, runs := range []int{0, -1, -100} {
		if seeds, err := seedRange(1, runs); err == nil {
			t.Fatalf("runs=%d: expected an error, got %v", runs, seeds)
		}
	}
}
