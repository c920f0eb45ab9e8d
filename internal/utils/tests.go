package util

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func CreateTempFile(t *testing.T, ext string) (string, func()) {
	t.Helper()
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, fmt.Sprintf("pagesim-test-%d%s", rand.Intn(100)+10, ext))
	return tempFile, func() {
		os.Remove(tempFile)
	}
}

// RandomTrace returns a deterministic trace of n references over pages [0, span)
func RandomTrace(seed int64, n int, span int) []PageNumber {
	r := rand.New(rand.NewSource(seed))
	refs := make([]PageNumber, n)
	for i := range refs {
		refs[i] = PageNumber(r.Intn(span))
	}
	return refs
}

// Trace converts ints to page numbers
func Trace(pages ...int) []PageNumber {
	refs := make([]PageNumber, len(pages))
	for i, p := range pages {
		refs[i] = PageNumber(p)
	}
	return refs
}
