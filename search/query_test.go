package search

import (
	"math"
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "whitespace only", text: "   \t ", want: []string{}},
		{name: "single word", text: "gopher", want: []string{"gopher"}},
		{name: "punctuation dropped", text: "hello, world!", want: []string{"hello", "world"}},
		{name: "case preserved", text: "Go go GO", want: []string{"Go", "go", "GO"}},
		{name: "duplicates kept", text: "cat dog cat", want: []string{"cat", "dog", "cat"}},
		{name: "numbers", text: "top 10 pages", want: []string{"top", "10", "pages"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseQuery(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTopKKeepsBestResults(t *testing.T) {
	best := newTopK(3)
	for i, score := range []float64{0.1, 0.5, 0.3, 0.9, 0.2, 0.5} {
		best.offer(Result{URI: string(rune('a' + i)), Score: score})
	}

	got := best.sorted()
	want := []string{"d", "b", "f"}
	if len(got) != len(want) {
		t.Fatalf("sorted() returned %d results, want %d", len(got), len(want))
	}

	for i, r := range got {
		if r.URI != want[i] {
			t.Errorf("sorted()[%d] = %q, want %q", i, r.URI, want[i])
		}
	}
}

func TestRetainCount(t *testing.T) {
	tests := []struct {
		name                     string
		offset, limit, documents int
		want                     int
	}{
		{name: "first page", offset: 0, limit: 10, documents: 25, want: 10},
		{name: "inner page", offset: 10, limit: 5, documents: 25, want: 15},
		{name: "last partial page", offset: 20, limit: 10, documents: 25, want: 25},
		{name: "offset past end", offset: 30, limit: 10, documents: 25, want: 25},
		{name: "max offset", offset: math.MaxInt, limit: 10, documents: 3, want: 3},
		{name: "max limit", offset: 1, limit: math.MaxInt, documents: 3, want: 3},
		{name: "no documents", offset: 0, limit: 10, documents: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retainCount(tt.offset, tt.limit, tt.documents); got != tt.want {
				t.Errorf("retainCount(%d, %d, %d) = %d, want %d", tt.offset, tt.limit, tt.documents, got, tt.want)
			}
		})
	}
}

func TestTopKWithZeroCapacity(t *testing.T) {
	best := newTopK(0)
	best.offer(Result{URI: "a", Score: 1})

	if got := best.sorted(); len(got) != 0 {
		t.Errorf("sorted() returned %d results, want 0", len(got))
	}
}
