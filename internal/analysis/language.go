// Package analysis implements the static-analysis core: language detection,
// per-language import/function extraction, syntax validation, complexity
// estimation, security heuristics, and the file/directory orchestration on
// top of them.
package analysis

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps recognized file extensions to language tags.
var languageByExtension = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".cs":    "csharp",
	".php":   "php",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".sh":    "bash",
	".r":     "r",
	".m":     "matlab",
}

// codeExtensions is the allow-list used for directory traversal. It is kept
// separate from languageByExtension on purpose: traversal recognizes more
// than the extractors currently support, leaving headroom for new languages.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".cpp": true,
	".c": true, ".cs": true, ".php": true, ".rb": true, ".go": true,
	".rs": true, ".swift": true, ".kt": true, ".scala": true, ".html": true,
	".css": true, ".sql": true, ".sh": true, ".r": true, ".m": true,
}

// DetectLanguage maps a file path to a language tag via its extension,
// case-insensitively. Unknown extensions map to "text".
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return "text"
}

// IsCodeFile reports whether the path carries a recognized code extension.
func IsCodeFile(path string) bool {
	return codeExtensions[strings.ToLower(filepath.Ext(path))]
}

// Capability classifies the extraction support available for a language.
type Capability int

const (
	// Unsupported languages return empty extraction results.
	Unsupported Capability = iota
	// PatternOnly languages are scanned with fixed text patterns.
	PatternOnly
	// Structured languages get a full syntactic parse, with a pattern
	// fallback when the parse fails.
	Structured
)

// Strategy is the per-language extraction and validation contract. Strategy
// methods never fail: parser faults inside an implementation degrade to
// pattern fallback or empty results.
type Strategy interface {
	Capability() Capability
	ExtractImports(code string) []string
	ExtractFunctions(code string) []Function
	ValidateSyntax(code string) SyntaxResult
}

// SyntaxResult reports structural validity. For languages without a parser
// Valid is always true, which means "not verified" rather than "confirmed".
type SyntaxResult struct {
	Valid bool
	Error string
}

var strategies = map[string]Strategy{
	"python":     pythonStrategy{},
	"javascript": scriptStrategy{},
	"typescript": scriptStrategy{},
}

// StrategyFor returns the extraction strategy for a language tag. Languages
// without a dedicated strategy get the unsupported one.
func StrategyFor(language string) Strategy {
	if s, ok := strategies[language]; ok {
		return s
	}
	return unsupportedStrategy{}
}

// unsupportedStrategy is the no-op strategy for languages with no extraction
// support yet.
type unsupportedStrategy struct{}

func (unsupportedStrategy) Capability() Capability { return Unsupported }

func (unsupportedStrategy) ExtractImports(string) []string { return []string{} }

func (unsupportedStrategy) ExtractFunctions(string) []Function { return []Function{} }

func (unsupportedStrategy) ValidateSyntax(string) SyntaxResult { return SyntaxResult{Valid: true} }
