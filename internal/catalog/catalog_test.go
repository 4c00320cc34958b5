package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "hostmetrics", "cpu.json")
	writeFile(t, root, "hostmetrics", "memory.json")
	writeFile(t, root, "k8s-infra-metrics", "nested", "pods.json")
	writeFile(t, root, "apm", "latency.json")
	writeFile(t, root, "toplevel.json")
	writeFile(t, root, "hostmetrics", "README.md")
	writeFile(t, root, ".git", "objects", "ignored.json")

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var labels []string
	for _, e := range entries {
		labels = append(labels, e.Label())
	}

	want := []string{
		"apm/latency.json",
		"general/toplevel.json",
		"hostmetrics/cpu.json",
		"hostmetrics/memory.json",
		"k8s-infra-metrics/pods.json",
	}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("expected %v, got %v", want, labels)
	}

	for _, e := range entries {
		if _, err := os.Stat(e.Path); err != nil {
			t.Errorf("entry path should exist: %v", err)
		}
	}
}

func TestScanEmptyTree(t *testing.T) {
	entries, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}
