package textnorm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsAlnum(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"hello", true},
		{"abc12", true},
		{"n't", false},
		{",", false},
		{"héllo", true},
		{"日本", true},
		{"a-b", false},
		{"42", true},
	}
	for _, tt := range tests {
		if got := IsAlnum(tt.in); got != tt.want {
			t.Fatalf("IsAlnum(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilter_DropsStopWordsAndPunctuation(t *testing.T) {
	stop := NewStopWords([]string{"the", "a", " Is "})
	tokens := []string{"the", "cat", "is", "on", "a", "mat", ".", "it", "n't", "cat"}

	got := Collect(Filter(tokens, stop))
	want := []string{"cat", "on", "mat", "it", "cat"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filtered tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Restartable(t *testing.T) {
	seq := Filter([]string{"one", "two", "!"}, NewStopWords(nil))
	first := Collect(seq)
	second := Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 tokens, got %v", first)
	}
}

func TestFilter_EarlyBreak(t *testing.T) {
	n := 0
	for range Filter([]string{"a1", "b2", "c3"}, NewStopWords(nil)) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected to stop after one token, got %d", n)
	}
}

func TestJoin_EmptyTextsContributeNothing(t *testing.T) {
	got := Prepare(Join([]string{"Hello", "", "World"}))
	if got != "hello  world" {
		t.Fatalf("unexpected joined text %q", got)
	}
}
