package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// TestFunc is a Test or Benchmark function and its doc comment.
type TestFunc struct {
	Name    string // e.g. "TestCheck_Detached"
	Doc     string
	IsTable bool // loops over cases calling t.Run
}

// TestFile holds the tests declared in one file.
type TestFile struct {
	Name  string // e.g. "root_integration_test.go"
	Tests []TestFunc
}

// TestPackage groups the test files of one directory.
type TestPackage struct {
	Name       string // directory relative to root, slash separated
	Files      []TestFile
	TotalTests int
}

// ParseTestFiles walks root and parses all *_test.go files.
// Directories the go tool ignores (hidden, "_" prefixed, testdata, vendor)
// are skipped. If integrationOnly is true, only *_integration_test.go files
// are included. Packages are named by their path relative to root.
func ParseTestFiles(root string, integrationOnly bool) ([]TestPackage, error) {
	packageMap := make(map[string]*TestPackage)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		if integrationOnly && !strings.HasSuffix(d.Name(), "_integration_test.go") {
			return nil
		}

		testFile, err := parseTestFile(path)
		if err != nil {
			return err
		}
		if len(testFile.Tests) == 0 {
			return nil
		}

		pkgPath, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil || pkgPath == "." {
			pkgPath = filepath.Base(root)
		}
		pkgPath = filepath.ToSlash(pkgPath)

		pkg, ok := packageMap[pkgPath]
		if !ok {
			pkg = &TestPackage{Name: pkgPath}
			packageMap[pkgPath] = pkg
		}
		pkg.Files = append(pkg.Files, *testFile)
		pkg.TotalTests += len(testFile.Tests)
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages := make([]TestPackage, 0, len(packageMap))
	for _, pkg := range packageMap {
		slices.SortFunc(pkg.Files, func(a, b TestFile) int { return strings.Compare(a.Name, b.Name) })
		packages = append(packages, *pkg)
	}
	slices.SortFunc(packages, func(a, b TestPackage) int { return strings.Compare(a.Name, b.Name) })
	return packages, nil
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// parseTestFile returns the test functions declared in path.
func parseTestFile(path string) (*TestFile, error) {
	file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	tf := &TestFile{Name: filepath.Base(path)}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !isTestFunction(fn) {
			continue
		}
		tf.Tests = append(tf.Tests, TestFunc{
			Name:    fn.Name.Name,
			Doc:     strings.TrimSpace(fn.Doc.Text()),
			IsTable: hasTableLoop(fn.Body),
		})
	}
	return tf, nil
}

// isTestFunction reports whether fn is TestXxx(*testing.T) or
// BenchmarkXxx(*testing.B).
func isTestFunction(fn *ast.FuncDecl) bool {
	params := fn.Type.Params.List
	if len(params) != 1 || len(params[0].Names) > 1 {
		return false
	}
	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "testing" {
		return false
	}

	name := fn.Name.Name
	switch sel.Sel.Name {
	case "T":
		return strings.HasPrefix(name, "Test")
	case "B":
		return strings.HasPrefix(name, "Benchmark")
	}
	return false
}

// hasTableLoop reports whether body ranges over something and calls Run
// inside the loop.
func hasTableLoop(body *ast.BlockStmt) bool {
	if body == nil {
		return false
	}
	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		loop, ok := n.(*ast.RangeStmt)
		if !ok || found {
			return !found
		}
		ast.Inspect(loop.Body, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok {
				if sel, ok := call.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Run" {
					found = true
				}
			}
			return !found
		})
		return !found
	})
	return found
}
