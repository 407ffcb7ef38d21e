package resources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsure_WritesOnceThenNoop(t *testing.T) {
	cache := t.TempDir()

	dir, n, err := Ensure(cache)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if dir != filepath.Join(cache, "nlp") {
		t.Fatalf("unexpected dir %s", dir)
	}
	if n == 0 {
		t.Fatalf("expected files to be written on first call")
	}

	// A locally edited list must survive later calls.
	custom := filepath.Join(dir, "stopwords", "english")
	if err := os.WriteFile(custom, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, n, err = Ensure(cache)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no files written on second call, got %d", n)
	}
	b, err := os.ReadFile(custom)
	if err != nil || string(b) != "hello\n" {
		t.Fatalf("existing file was replaced: %q (err=%v)", b, err)
	}
}

func TestLoadStopWords_English(t *testing.T) {
	dir, _, err := Ensure(t.TempDir())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	stop, err := LoadStopWords(dir, "english")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, w := range []string{"the", "a", "again", "don't", "i"} {
		if !stop.Contains(w) {
			t.Fatalf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"hello", "world", "meeting"} {
		if stop.Contains(w) {
			t.Fatalf("did not expect %q to be a stop word", w)
		}
	}
	if stop.Len() != 179 {
		t.Fatalf("expected 179 english stop words, got %d", stop.Len())
	}
}

func TestLoadStopWords_UnknownLanguage(t *testing.T) {
	dir, _, err := Ensure(t.TempDir())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, err := LoadStopWords(dir, "klingon"); err == nil {
		t.Fatalf("expected error for missing language")
	}
	if HasStopWords("klingon") || !HasStopWords("english") {
		t.Fatalf("HasStopWords reports wrong availability")
	}
}
