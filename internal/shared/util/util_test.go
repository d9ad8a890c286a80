package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSortedStringKeys(t *testing.T) {
	m := map[string]int{"webpack": 2, "lodash": 1, "moment": 3}
	got := SortedStringKeys(m)
	want := []string{"lodash", "moment", "webpack"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := SortedStringKeys(map[string]bool{}); len(got) != 0 {
		t.Errorf("expected no keys for an empty map, got %v", got)
	}
}

func TestWriteFileWithDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.txt")
	if err := WriteFileWithDirs(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected content %q", data)
	}
}
