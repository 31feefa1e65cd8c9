package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/builtins"
	"github.com/cwbudde/go-tscheck/internal/checker"
	"github.com/cwbudde/go-tscheck/internal/config"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/parser"
	"github.com/cwbudde/go-tscheck/internal/resolver"
)

var (
	projectDir string
	jsonOutput bool
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Type-check a set of files, or a whole project by directory",
	Long: `check parses every given file (or, with no arguments, every file the
project configuration's include/exclude globs select under the current
directory), follows their relative imports to pull in the rest of the
module graph, and reports every diagnostic the checker produces.

Examples:
  # Check the whole project rooted at the current directory
  tscheck check

  # Check specific files
  tscheck check src/app.ts src/lib/util.ts

  # Emit machine-readable JSON instead of formatted text
  tscheck check --json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&projectDir, "project", ".", "project root to load tscheck.json/tscheck.yaml from")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as a JSON array instead of formatted text")
}

func runCheck(_ *cobra.Command, args []string) error {
	project, err := config.Load(projectDir)
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}

	entryPaths := args
	if len(entryPaths) == 0 {
		entryPaths, err = discoverSources(projectDir, project)
		if err != nil {
			return fmt.Errorf("discovering sources: %w", err)
		}
	}
	if len(entryPaths) == 0 {
		fmt.Fprintln(os.Stderr, "tscheck: no input files")
		return nil
	}

	res := resolver.NewFSResolver()
	source := map[string]string{}
	var syntaxDiags []*diag.Diagnostic

	programs, err := loadModuleGraph(entryPaths, res, source, &syntaxDiags)
	if err != nil {
		return err
	}

	modules := make([]*checker.ResolvedModule, 0, len(programs))
	for path, prog := range programs {
		modules = append(modules, &checker.ResolvedModule{Path: path, Program: prog})
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Path < modules[j].Path })

	session := checker.NewSession(builtins.NewCatalog(), res, project)
	result, err := session.Check(modules)
	if err != nil {
		return fmt.Errorf("checking project: %w", err)
	}

	all := append(append([]*diag.Diagnostic{}, syntaxDiags...), result.Diagnostics...)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].File != all[j].File {
			return all[i].File < all[j].File
		}
		return all[i].Pos.Line < all[j].Pos.Line
	})

	if jsonOutput {
		if err := printJSON(all); err != nil {
			return err
		}
	} else {
		printText(all, source)
	}

	for _, d := range all {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			return fmt.Errorf("found %d error(s)", countErrors(all))
		}
	}
	return nil
}

// loadModuleGraph parses every entry path, then follows each parsed
// module's relative import/re-export specifiers transitively, the
// way the teacher's cmd/dwscript compile command walks `uses` clauses
// to assemble a full unit registry before compiling.
func loadModuleGraph(entryPaths []string, res resolver.Resolver, source map[string]string, syntaxDiags *[]*diag.Diagnostic) (map[string]*ast.Program, error) {
	programs := map[string]*ast.Program{}
	worklist := append([]string{}, entryPaths...)

	for len(worklist) > 0 {
		path := worklist[0]
		worklist = worklist[1:]
		if _, done := programs[path]; done {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		source[path] = string(content)

		l := lexer.New(string(content))
		p := parser.New(l)
		prog := p.Parse(path)
		for _, perr := range p.Errors() {
			*syntaxDiags = append(*syntaxDiags, diag.New(diag.SyntaxErrorKind,
				diag.Position{Line: perr.Pos.Line, Column: perr.Pos.Column}, path, perr.Message))
		}
		programs[path] = prog

		for _, spec := range relativeImportSpecifiers(prog) {
			resolved, err := res.Resolve(path, spec)
			if err != nil {
				continue // unresolved relative import is reported by the checker itself
			}
			if _, done := programs[resolved]; !done {
				worklist = append(worklist, resolved)
			}
		}
	}
	return programs, nil
}

func relativeImportSpecifiers(prog *ast.Program) []string {
	var out []string
	add := func(spec string) {
		if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
			out = append(out, spec)
		}
	}
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.ImportDeclaration:
			add(s.Source)
			add(s.RequireTarget)
		case *ast.ExportDeclaration:
			add(s.Source)
		}
	}
	return out
}

// discoverSources walks dir collecting every file matching
// project.Include's suffix patterns and skipping every directory whose
// path contains an Exclude pattern (with a trailing "/**" or "/*"
// removed) as a substring, a deliberately simpler subset of full
// glob semantics than TypeScript's tsconfig "include"/"exclude", since
// this checker's project config is its own invention rather than a
// ported teacher feature.
func discoverSources(dir string, project *config.Project) ([]string, error) {
	var out []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			for _, ex := range project.Exclude {
				if strings.Contains(path, strings.TrimSuffix(strings.TrimSuffix(ex, "/**"), "/*")) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if matchesInclude(path, project.Include) {
			out = append(out, path)
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

func matchesInclude(path string, patterns []string) bool {
	for _, pat := range patterns {
		suffix := strings.TrimPrefix(pat, "**/")
		if matched, _ := filepath.Match(suffix, filepath.Base(path)); matched {
			return true
		}
	}
	return false
}

func countErrors(items []*diag.Diagnostic) int {
	n := 0
	for _, d := range items {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			n++
		}
	}
	return n
}

func printText(items []*diag.Diagnostic, source map[string]string) {
	formatter := diag.NewFormatter(source)
	if len(items) == 0 {
		fmt.Println("No errors found.")
		return
	}
	fmt.Print(formatter.FormatAll(items))
}

func printJSON(items []*diag.Diagnostic) error {
	out := "[]"
	var err error
	for i, d := range items {
		prefix := fmt.Sprintf("%d.", i)
		if out, err = sjson.Set(out, prefix+"kind", string(d.Kind)); err != nil {
			return err
		}
		if out, err = sjson.Set(out, prefix+"severity", d.Severity.String()); err != nil {
			return err
		}
		if out, err = sjson.Set(out, prefix+"file", d.File); err != nil {
			return err
		}
		if out, err = sjson.Set(out, prefix+"line", d.Pos.Line); err != nil {
			return err
		}
		if out, err = sjson.Set(out, prefix+"column", d.Pos.Column); err != nil {
			return err
		}
		if out, err = sjson.Set(out, prefix+"message", d.Message); err != nil {
			return err
		}
	}
	os.Stdout.Write(pretty.Pretty([]byte(out)))
	return nil
}
