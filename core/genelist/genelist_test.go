package genelist

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSynthetic(t *testing.T) {
	got := Synthetic(3)
	want := []string{"gene_1", "gene_2", "gene_3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadStripsBlanksAndWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genes.txt")
	data := "TP53\n\n  BRCA1 \n\t\nEGFR\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"TP53", "BRCA1", "EGFR"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genes.txt.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte("MYC\nKRAS\n")); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load gz: %v", err)
	}
	want := []string{"MYC", "KRAS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProviders(t *testing.T) {
	names, err := Fixed([]string{"a", "b"})()
	if err != nil || len(names) != 2 {
		t.Fatalf("fixed provider: %v %v", names, err)
	}

	path := filepath.Join(t.TempDir(), "genes.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	names, err = FromFile(path)()
	if err != nil || len(names) != 3 {
		t.Fatalf("file provider: %v %v", names, err)
	}
}
