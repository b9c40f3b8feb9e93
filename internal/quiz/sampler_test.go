package quiz

import (
	"errors"
	"slices"
	"testing"
)

func TestSample_DistinctAndExcluded(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}
	exclude := NewSet("a", "c")

	for seed := uint64(1); seed <= 200; seed++ {
		got, err := Sample(NewRand(seed), pool, exclude, 3)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(got) != 3 {
			t.Fatalf("seed %d: len = %d, want 3", seed, len(got))
		}
		seen := NewSet()
		for _, name := range got {
			if exclude.Contains(name) {
				t.Errorf("seed %d: excluded name %q sampled", seed, name)
			}
			if seen.Contains(name) {
				t.Errorf("seed %d: duplicate %q", seed, name)
			}
			if !slices.Contains(pool, name) {
				t.Errorf("seed %d: %q not in pool", seed, name)
			}
			seen[name] = struct{}{}
		}
	}
}

func TestSample_CoversWholeCandidateSet(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	hits := make(map[string]int)
	for seed := uint64(1); seed <= 500; seed++ {
		got, err := Sample(NewRand(seed), pool, NewSet("a"), 1)
		if err != nil {
			t.Fatal(err)
		}
		hits[got[0]]++
	}
	for _, name := range []string{"b", "c", "d", "e"} {
		if hits[name] == 0 {
			t.Errorf("%q never sampled", name)
		}
	}
	if hits["a"] != 0 {
		t.Errorf("excluded %q sampled %d times", "a", hits["a"])
	}
}

func TestSample_DeduplicatesPool(t *testing.T) {
	got, err := Sample(NewRand(7), []string{"a", "a", "b", "b", "c"}, nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(got)
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v, want [a b c]", got)
	}
}

func TestSample_InsufficientPool(t *testing.T) {
	_, err := Sample(NewRand(1), []string{"a", "b", "c", "d"}, NewSet("a", "b"), 3)

	var poolErr *InsufficientPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("error = %v, want *InsufficientPoolError", err)
	}
	if poolErr.Need != 3 || poolErr.Available != 2 {
		t.Errorf("Need/Available = %d/%d, want 3/2", poolErr.Need, poolErr.Available)
	}
}

func TestSample_SameSeedSameResult(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g"}
	a, _ := Sample(NewRand(42), pool, nil, 3)
	b, _ := Sample(NewRand(42), pool, nil, 3)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestSample_NegativeCount(t *testing.T) {
	if _, err := Sample(NewRand(1), []string{"a"}, nil, -1); err == nil {
		t.Error("expected error for negative count")
	}
}
