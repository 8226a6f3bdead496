package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	name := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	name := writeLines(t, 1000)
	for _, batchSize := range []int{0, 1, 7, 1000, 5000} {
		seq, err := Load(name, batchSize)
		if err != nil {
			t.Fatal(err)
		}
		if seq.Len() != 1000 {
			t.Fatalf("batch size %d: expected 1000 lines, got %d", batchSize, seq.Len())
		}
		if err := seq.Check(); err != nil {
			t.Fatalf("batch size %d: %v", batchSize, err)
		}
		if l, _ := seq.At(517); l != "line 517" {
			t.Errorf("batch size %d: line 517 is %q", batchSize, l)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	seq, err := Load(writeLines(t, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !seq.IsEmpty() {
		t.Errorf("expected empty sequence, got %d lines", seq.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 0); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := Load(t.TempDir(), 0); err == nil {
		t.Errorf("expected error for directory")
	}
}
