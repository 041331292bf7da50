package analysis

import "regexp"

// scriptStrategy covers javascript and typescript. No structural parser is
// attempted: a fixed set of patterns is applied across the whole text and
// raw matches are returned. Function extraction is an extension point and
// currently returns nothing.
type scriptStrategy struct{}

func (scriptStrategy) Capability() Capability { return PatternOnly }

var scriptImportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`import\s+.*?from\s+['"][^'"]+['"];?`),
	regexp.MustCompile(`import\s+.*?;?`),
	regexp.MustCompile(`const\s+.*?=\s+require\s*\(['"][^'"]+['"]\);?`),
	regexp.MustCompile(`let\s+.*?=\s+require\s*\(['"][^'"]+['"]\);?`),
	regexp.MustCompile(`var\s+.*?=\s+require\s*\(['"][^'"]+['"]\);?`),
}

func (scriptStrategy) ExtractImports(code string) []string {
	imports := []string{}
	for _, pattern := range scriptImportPatterns {
		imports = append(imports, pattern.FindAllString(code, -1)...)
	}
	return imports
}

func (scriptStrategy) ExtractFunctions(string) []Function { return []Function{} }

func (scriptStrategy) ValidateSyntax(string) SyntaxResult { return SyntaxResult{Valid: true} }
