package orderedtree

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLicenseReferencesResolve(t *testing.T) {
	license, err := os.ReadFile("LICENSE")
	if err != nil {
		t.Fatalf("package docs refer to a LICENSE file: %v", err)
	}
	doc, err := os.ReadFile("doc.go")
	if err != nil {
		t.Fatal(err)
	}
	clause := "Neither the name of the copyright holder nor the names of its"
	if !strings.Contains(string(license), clause) || !strings.Contains(string(doc), clause) {
		t.Errorf("expected LICENSE and doc.go to carry the same BSD 3-Clause text")
	}
	var referring int
	err = filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), "_") {
			return filepath.SkipDir
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if strings.Contains(string(src), "Please refer to the LICENSE file") {
			referring++
			if !strings.Contains(string(src), "BSD 3-Clause License") {
				t.Errorf("%s: license reference without license name", path)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if referring == 0 {
		t.Errorf("expected package docs to refer to LICENSE")
	}
}
