package analysis

import (
	"regexp"
	"strings"
)

// Pattern fallback for python sources whose structural parse failed. Each
// line is tested independently, so a fatal syntax error in one place still
// yields best-effort results for the rest of the file. Multi-line
// parenthesized import groups are not matched; this limitation is part of
// the reported behavior, not a defect to fix here.
var (
	fallbackImportPattern = regexp.MustCompile(`^(?:from\s+\w+(?:\.\w+)*\s+import\s+.+|import\s+.+)`)
	fallbackDefPattern    = regexp.MustCompile(`^def\s+(\w+)\s*\(([^)]*)\):`)
)

// fallbackPythonImports collects import-looking lines verbatim.
func fallbackPythonImports(code string) []string {
	imports := []string{}
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if fallbackImportPattern.MatchString(line) {
			imports = append(imports, line)
		}
	}
	return imports
}

// fallbackPythonFunctions collects single-line def headers. Docstrings are
// not recoverable in this tier.
func fallbackPythonFunctions(code string) []Function {
	functions := []Function{}
	for i, line := range strings.Split(code, "\n") {
		match := fallbackDefPattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		args := []string{}
		for _, arg := range strings.Split(match[2], ",") {
			if arg = strings.TrimSpace(arg); arg != "" {
				args = append(args, arg)
			}
		}
		functions = append(functions, Function{
			Name: match[1],
			Line: i + 1,
			Args: args,
		})
	}
	return functions
}
