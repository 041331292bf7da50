package analysis

import "encoding/json"

// Function describes one callable definition found in a source file.
type Function struct {
	Name      string   `json:"name"`
	Line      int      `json:"line"`
	Args      []string `json:"args"`
	Docstring *string  `json:"docstring"`
}

// Complexity holds the line-based complexity metrics for one source text.
type Complexity struct {
	TotalLines    int     `json:"total_lines"`
	CodeLines     int     `json:"code_lines"`
	CommentLines  int     `json:"comment_lines"`
	FunctionCount int     `json:"function_count"`
	CommentRatio  float64 `json:"comment_ratio"`
}

// Options is the flags bundle controlling the optional, collaborator-backed
// parts of a file analysis.
type Options struct {
	DeepAnalysis bool
	GenerateDocs bool
	SecurityScan bool
}

// FileReport is the result of analyzing one file. A report is either an
// error record (Err set, everything else discarded) or a full record; it is
// never both. Optional fields are nil unless the corresponding flag was set.
type FileReport struct {
	Err       string
	FilePath  string
	Language  string
	FileSize  int64
	LineCount int

	Complexity  Complexity
	Imports     []string
	Functions   []Function
	SyntaxValid bool
	SyntaxError string

	AIInsights     *string
	Improvements   *string
	GeneratedDocs  *string
	SecurityIssues []string // nil when no scan was requested, empty when clean
}

// MarshalJSON emits one of three shapes: the error record, the snippet
// record (no path or size), or the full file record.
func (r *FileReport) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(map[string]any{
			"error":     r.Err,
			"file_path": r.FilePath,
		})
	}

	m := map[string]any{
		"language":     r.Language,
		"line_count":   r.LineCount,
		"complexity":   r.Complexity,
		"imports":      r.Imports,
		"functions":    r.Functions,
		"syntax_valid": r.SyntaxValid,
	}
	if r.FilePath != "" {
		m["file_path"] = r.FilePath
		m["file_size"] = r.FileSize
	}
	if !r.SyntaxValid {
		m["syntax_error"] = r.SyntaxError
	}
	if r.AIInsights != nil {
		m["ai_insights"] = *r.AIInsights
	}
	if r.Improvements != nil {
		m["improvement_suggestions"] = *r.Improvements
	}
	if r.GeneratedDocs != nil {
		m["generated_docs"] = *r.GeneratedDocs
	}
	if r.SecurityIssues != nil {
		m["security_issues"] = r.SecurityIssues
	}
	return json.Marshal(m)
}

// Summary aggregates per-file results for a directory analysis.
type Summary struct {
	TotalFiles  int            `json:"total_files"`
	TotalLines  int            `json:"total_lines"`
	Languages   map[string]int `json:"languages"`
	IssuesFound int            `json:"issues_found"`
	Issues      []string       `json:"issues"`
}

// DirectoryReport is the result of recursively analyzing a directory.
type DirectoryReport struct {
	DirectoryPath string        `json:"directory_path"`
	FilesAnalyzed []*FileReport `json:"files_analyzed"`
	Summary       Summary       `json:"summary"`
}
