package scanner

import (
	"math/rand"
	"sort"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"page2.jpg", "page10.jpg", -1},
		{"Page2.jpg", "page10.JPG", -1},
		{"page10.jpg", "page2.jpg", 1},
		{"a", "a", 0},
		{"", "a", -1},
		{"a", "", 1},
		{"", "", 0},
		{"007", "7", -1}, // equal value, broken by bytes
		{"7", "007", 1},
		{"7", "08", -1},
		{"ch01/1.jpg", "ch02/1.jpg", -1},
		{"ch1/10.jpg", "ch2/1.jpg", -1},
		{"ABC", "abc", -1},
		{"abc", "abd", -1},
		{"x99999999999999999999999", "x100000000000000000000000", -1},
		{"img", "img1", -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Compare(tt.b, tt.a); got != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestCompare_SortIsDeterministic(t *testing.T) {
	want := []string{"1.jpg", "2.jpg", "10.jpg", "20.jpg", "100.jpg"}
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 20; n++ {
		got := append([]string(nil), want...)
		r.Shuffle(len(got), func(i, j int) { got[i], got[j] = got[j], got[i] })
		sort.Slice(got, func(i, j int) bool { return Less(got[i], got[j]) })
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("sorted = %v, want %v", got, want)
			}
		}
	}
}

func TestCompare_Transitive(t *testing.T) {
	words := []string{"", "a", "A", "a1", "a01", "a001", "a2", "a10", "b", "B1", "_", "-", "1", "01", "z9", "Z10", "ch1/2", "ch01/1", "ch1.5"}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				if Compare(a, b) < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Errorf("not transitive: %q < %q < %q but Compare(%q, %q) = %d", a, b, c, a, c, Compare(a, c))
				}
			}
		}
	}
}
