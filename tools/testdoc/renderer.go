package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// RenderMarkdown writes the test documentation as markdown, one section
// per package. Scenario and Expected lines from doc comments get their own
// columns.
func RenderMarkdown(w io.Writer, packages []TestPackage, generated time.Time) error {
	fmt.Fprintf(w, "# Test Documentation\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", generated.Format("2006-01-02"))

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Package | Tests |\n")
	fmt.Fprintf(w, "|---------|-------|\n")

	totalTests := 0
	for _, pkg := range packages {
		fmt.Fprintf(w, "| [%s](#%s) | %d |\n", pkg.Name, toAnchor(pkg.Name), pkg.TotalTests)
		totalTests += pkg.TotalTests
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", totalTests)

	for _, pkg := range packages {
		renderPackageSection(w, pkg)
	}
	return nil
}

func renderPackageSection(w io.Writer, pkg TestPackage) {
	fmt.Fprintf(w, "## %s\n\n", pkg.Name)
	fmt.Fprintf(w, "| Test | Description | Scenario | Expected |\n")
	fmt.Fprintf(w, "|------|-------------|----------|----------|\n")

	for _, file := range pkg.Files {
		for _, test := range file.Tests {
			d := parseDoc(test.Doc, test.Name)
			name := "`" + test.Name + "`"
			if test.IsTable {
				name += " (table)"
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", name, cell(d.Description), cell(d.Scenario), cell(d.Expected))
		}
	}
	fmt.Fprintf(w, "\n")
}

// testDoc is a test doc comment split into its parts.
type testDoc struct {
	Description string
	Scenario    string
	Expected    string
}

// parseDoc splits a doc comment into the first sentence line and the
// "Scenario:" and "Expected:" lines, if present.
func parseDoc(doc, testName string) testDoc {
	var d testDoc
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "Scenario:"):
			d.Scenario = strings.TrimSpace(strings.TrimPrefix(line, "Scenario:"))
		case strings.HasPrefix(line, "Expected:"):
			d.Expected = strings.TrimSpace(strings.TrimPrefix(line, "Expected:"))
		case d.Description == "":
			// Strip test name prefix if present (e.g., "TestHelp verifies..." -> "verifies...")
			line = strings.TrimPrefix(line, testName+" ")
			d.Description = strings.ToUpper(line[:1]) + line[1:]
		}
	}
	if d.Description == "" {
		d.Description = "_No documentation_"
	}
	return d
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

var anchorInvalid = regexp.MustCompile(`[^a-z0-9-]`)

// toAnchor converts a heading to a markdown anchor.
func toAnchor(heading string) string {
	anchor := strings.ToLower(strings.ReplaceAll(heading, " ", "-"))
	return anchorInvalid.ReplaceAllString(anchor, "")
}
