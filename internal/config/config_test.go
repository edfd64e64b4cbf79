package config

import (
	"os"
	"path/filepath"
	"testing"

	"rnasim/internal/cli"
)

func writeYAML(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestMergeAppliesFileValues(t *testing.T) {
	path := writeYAML(t, "genes: 500\nde_prop: 0.2\nseed: 7\nchecksum: true\n")
	opt := cli.Defaults()
	if err := Merge(&opt, path, nil); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if opt.Genes != 500 || opt.DEProp != 0.2 || opt.Seed != 7 || !opt.Checksum {
		t.Errorf("file values not applied: %+v", opt)
	}
	// untouched fields keep their defaults
	if opt.Controls != 5 || opt.Output != "simulated_counts.tsv" {
		t.Errorf("defaults clobbered: %+v", opt)
	}
}

func TestMergeRespectsExplicitFlags(t *testing.T) {
	path := writeYAML(t, "genes: 500\nseed: 7\n")
	opt := cli.Defaults()
	opt.Genes = 123 // user typed --genes 123
	if err := Merge(&opt, path, map[string]bool{"genes": true}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if opt.Genes != 123 {
		t.Errorf("explicit flag overridden: genes = %d", opt.Genes)
	}
	if opt.Seed != 7 {
		t.Errorf("non-explicit field not merged: seed = %d", opt.Seed)
	}
}

func TestMergeRejectsUnknownKeys(t *testing.T) {
	path := writeYAML(t, "genes: 10\nbogus_key: 1\n")
	opt := cli.Defaults()
	if err := Merge(&opt, path, nil); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestMergeMissingFile(t *testing.T) {
	opt := cli.Defaults()
	if err := Merge(&opt, filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}
