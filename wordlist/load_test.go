package wordlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	name := writeFile(t, "apple\nbanana\r\n\n  cherry \n")
	words, err := Load(context.Background(), name)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "cherry"}, words); diff != "" {
		t.Errorf("word list mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadManyBatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	const n = 3*DefaultBatchSize + 17
	var b strings.Builder
	want := make([]string, n)
	for i := range n {
		want[i] = fmt.Sprintf("w%05d", i)
		b.WriteString(want[i] + "\n")
	}
	words, err := Load(context.Background(), writeFile(t, b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Errorf("word list mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	words, err := Load(context.Background(), writeFile(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 0 {
		t.Errorf("expected no words, got %v", words)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orderedtree")
	defer teardown()
	//
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := Load(context.Background(), t.TempDir()); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for directory, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, writeFile(t, "a\n")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
