package scan

import (
	"sort"
	"strings"
	"testing"
)

func members(normalized string) []string {
	if normalized == "" {
		return nil
	}
	parts := strings.Split(normalized, " ")
	sort.Strings(parts)
	return parts
}

func TestNormalizeDeduplicatesAndLowercases(t *testing.T) {
	got := Normalize([]string{"Gelatin", "Water", "Gelatin"})

	want := []string{"gelatin", "water"}
	if gotParts := members(got); len(gotParts) != len(want) {
		t.Fatalf("expected members %v, got %q", want, got)
	} else {
		for i := range want {
			if gotParts[i] != want[i] {
				t.Fatalf("expected members %v, got %q", want, got)
			}
		}
	}
}

func TestNormalizeDedupIsByExactOriginalCasing(t *testing.T) {
	// "Gelatin" and "GELATIN" are distinct fragments before lower-casing,
	// so both survive dedup and the result repeats the word.
	got := Normalize([]string{"Gelatin", "GELATIN"})
	if strings.Count(got, "gelatin") != 2 {
		t.Fatalf("expected two gelatin members, got %q", got)
	}
}

func TestNormalizeMemberSetStableAcrossRuns(t *testing.T) {
	fragments := []string{"Sugar", "Salt", "Water", "Sugar", "Salt"}

	first := members(Normalize(fragments))
	for i := 0; i < 20; i++ {
		again := members(Normalize(fragments))
		if len(again) != len(first) {
			t.Fatalf("member set changed: %v vs %v", first, again)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("member set changed: %v vs %v", first, again)
			}
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
