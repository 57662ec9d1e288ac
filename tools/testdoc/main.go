// Command testdoc generates docs/TESTS.md from the doc comments of the
// repository's test functions.
//
//	go run ./tools/testdoc -root . -out docs/TESTS.md
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func main() {
	root := flag.String("root", ".", "directory to scan for test files")
	out := flag.String("out", "docs/TESTS.md", "markdown file to write")
	integration := flag.Bool("integration", false, "only include *_integration_test.go files")
	flag.Parse()

	n, err := generate(*root, *out, *integration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testdoc: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s with %d packages\n", *out, n)
}

// generate writes the documentation for root to out and returns the number
// of packages documented.
func generate(root, out string, integrationOnly bool) (int, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("resolve root: %w", err)
	}
	packages, err := ParseTestFiles(absRoot, integrationOnly)
	if err != nil {
		return 0, fmt.Errorf("parse tests: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	if err := RenderMarkdown(f, packages, time.Now()); err != nil {
		f.Close()
		return 0, fmt.Errorf("render: %w", err)
	}
	return len(packages), f.Close()
}
