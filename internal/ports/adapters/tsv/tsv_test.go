package tsv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/forPelevin/tsvreport/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscover_SkipsCombinedAndOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bob.tsv", "all.tsv", "alice.tsv", "notes.txt", "upper.TSV"} {
		writeFile(t, filepath.Join(dir, name), "text\tstart\tend\n")
	}
	if err := os.Mkdir(filepath.Join(dir, "dir.tsv"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := New(".tsv", "all.tsv").Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{filepath.Join(dir, "alice.tsv"), filepath.Join(dir, "bob.tsv")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("discovered files mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSource_TagsRowsAndKeepsRequiredColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alice.tsv")
	writeFile(t, path, "start\tend\tconfidence\ttext\n0\t1000\t0.9\thello world\n2000\t2500\t0.4\t\n3000\t3100\t0.1\tNaN\n")

	got, err := New(".tsv", "all.tsv").ReadSource(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []types.Segment{
		{Person: "alice", Text: "hello world", Start: 0, End: 1000},
		{Person: "alice", Text: "", Start: 2000, End: 2500},
		{Person: "alice", Text: "", Start: 3000, End: 3100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
		wantIs  error
	}{
		{"missing end column", "text\tstart\nhi\t0\n", `missing column "end"`, ErrMissingColumn},
		{"bad start", "text\tstart\tend\nhi\tzero\t10\n", "line 2: start", nil},
		{"field count", "text\tstart\tend\nhi\t0\t10\textra\n", "wrong number of fields", nil},
		{"empty file", "", "no header row", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "x.tsv")
			writeFile(t, path, tt.content)
			_, err := New("", "").ReadSource(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("error %q does not contain %q", err, tt.wantSub)
			}
			if !strings.HasPrefix(err.Error(), "x.tsv: ") {
				t.Fatalf("error %q should name the file", err)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Fatalf("expected errors.Is(%v), got %v", tt.wantIs, err)
			}
		})
	}
}

func TestEncode_Format(t *testing.T) {
	var buf bytes.Buffer
	rows := []types.Segment{
		{ID: 1, Person: "alice", Text: "hello world", Start: 0, End: 1000, Duration: 1000},
		{ID: 2, Person: "bob", Text: "", Start: 500, End: 1500, Duration: 1000},
		{ID: 3, Person: "bob", Text: "tab\there", Start: 600, End: 700, Duration: 100},
	}
	if err := encode(&buf, rows); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "id\tperson\ttext\tstart\tend\tduration\n" +
		"1\talice\thello world\t0\t1000\t1000\n" +
		"2\tbob\t\t500\t1500\t1000\n" +
		"3\tbob\t\"tab\there\"\t600\t700\t100\n"
	if got := buf.String(); got != want {
		t.Fatalf("encoded table mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteCombined_OverwritesAndReadsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "all.tsv")
	writeFile(t, path, "stale content that is much longer than the new table\n")

	rows := []types.Segment{{ID: 1, Person: "alice", Text: "hi", Start: 0, End: 10, Duration: 10}}
	a := New(".tsv", "all.tsv")
	if err := a.WriteCombined(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(b), "stale") {
		t.Fatalf("expected previous content to be replaced, got %q", b)
	}

	back, err := a.ReadSource(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(back) != 1 || back[0].Text != "hi" || back[0].End != 10 {
		t.Fatalf("unexpected rows read back: %+v", back)
	}
}

func TestSourceName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/tmp/alice.tsv", "alice"},
		{"bob.smith.tsv", "bob.smith"},
		{filepath.Join("x", "c"), "c"},
	}
	for _, tt := range tests {
		if got := SourceName(tt.in); got != tt.want {
			t.Fatalf("SourceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
