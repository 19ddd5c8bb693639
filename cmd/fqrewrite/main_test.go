package main

import (
	"path/filepath"
	"testing"
)

func TestFilePairsExplicit(t *testing.T) {
	pairs, err := filePairs([]string{"in.fastq", "out.fastq.gz"}, "")
	if err != nil {
		t.Fatalf("file pairs: %v", err)
	}
	if len(pairs) != 1 || pairs[0].in != "in.fastq" || pairs[0].out != "out.fastq.gz" {
		t.Fatalf("unexpected pairs %+v", pairs)
	}
}

func TestFilePairsWrongArity(t *testing.T) {
	if _, err := filePairs([]string{"only-one"}, ""); err == nil {
		t.Fatalf("expected error for single argument without -out-dir")
	}
	if _, err := filePairs(nil, t.TempDir()); err == nil {
		t.Fatalf("expected error for no inputs with -out-dir")
	}
}

func TestFilePairsOutDir(t *testing.T) {
	dir := t.TempDir()

	pairs, err := filePairs([]string{"a/x.fastq", "b/y.fastq.gz"}, dir)
	if err != nil {
		t.Fatalf("file pairs: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].out != filepath.Join(dir, "x.fastq.gz") {
		t.Fatalf("unexpected output %q", pairs[0].out)
	}
	// An already .gz-named input must not get a doubled suffix.
	if pairs[1].out != filepath.Join(dir, "y.fastq.gz") {
		t.Fatalf("unexpected output %q", pairs[1].out)
	}
}

func TestFilePairsMissingOutDir(t *testing.T) {
	if _, err := filePairs([]string{"x.fastq"}, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing output directory")
	}
}
