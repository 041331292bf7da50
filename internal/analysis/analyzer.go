package analysis

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"codescope/config"
	"codescope/internal/files"
	"codescope/internal/llm"
)

// Analyzer runs the per-file pipeline and the directory aggregation. It
// holds no mutable state across invocations: every call re-reads and
// re-analyzes from scratch.
type Analyzer struct {
	generator   llm.Generator // nil when no collaborator is configured
	maxFileSize int64
}

// New creates an Analyzer. The generator may be nil; collaborator-backed
// fields then degrade to their failure text and security scanning stays
// static-only.
func New(generator llm.Generator) *Analyzer {
	a := &Analyzer{generator: generator}
	if config.AppConfig != nil {
		a.maxFileSize = config.AppConfig.Analysis.MaxFileReadSize
	}
	return a
}

// Analyze dispatches on the path type and returns either a *FileReport or a
// *DirectoryReport. A path that is neither file nor directory is fatal for
// the invocation.
func (a *Analyzer) Analyze(path string, opts Options) (any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if info.IsDir() {
		return a.AnalyzeDirectory(path, opts), nil
	}
	return a.AnalyzeFile(path, opts), nil
}

// AnalyzeFile runs the full pipeline for one file. Any fault (unreadable
// file, unexpected internal error) discards partial results and yields
// exactly the error record, so a report is never partially error-and-success.
func (a *Analyzer) AnalyzeFile(path string, opts Options) (report *FileReport) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Analysis of '%s' panicked: %v", path, r)
			report = &FileReport{Err: fmt.Sprintf("internal error: %v", r), FilePath: path}
		}
	}()

	code, size, err := files.ReadSource(path, a.maxFileSize)
	if err != nil {
		return &FileReport{Err: err.Error(), FilePath: path}
	}

	report = a.analyzeCode(code, DetectLanguage(path), opts)
	report.FilePath = path
	report.FileSize = size
	return report
}

// AnalyzeSource runs the pipeline on an in-memory snippet. The report
// carries no path or size. Only deep analysis is available for snippets.
// Faults degrade to an error record just as in AnalyzeFile.
func (a *Analyzer) AnalyzeSource(code, language string, deep bool) (report *FileReport) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Snippet analysis panicked: %v", r)
			report = &FileReport{Err: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	return a.analyzeCode(code, language, Options{DeepAnalysis: deep})
}

func (a *Analyzer) analyzeCode(code, language string, opts Options) *FileReport {
	strategy := StrategyFor(language)

	imports := strategy.ExtractImports(code)
	functions := strategy.ExtractFunctions(code)
	syntax := strategy.ValidateSyntax(code)

	report := &FileReport{
		Language:    language,
		LineCount:   len(strings.Split(code, "\n")),
		Complexity:  EstimateComplexity(code, len(functions)),
		Imports:     imports,
		Functions:   functions,
		SyntaxValid: syntax.Valid,
		SyntaxError: syntax.Error,
	}

	if opts.DeepAnalysis {
		insights := a.aiInsights(code, language)
		suggestions := a.improvementSuggestions(code, language)
		report.AIInsights = &insights
		report.Improvements = &suggestions
	}
	if opts.GenerateDocs {
		docs := a.generateDocumentation(code, language)
		report.GeneratedDocs = &docs
	}
	if opts.SecurityScan {
		report.SecurityIssues = ScanSecurity(code, language, a.generator)
	}
	return report
}

// AnalyzeDirectory recursively analyzes every allow-listed file under root.
// One file failing never prevents analysis or reporting of its siblings:
// failures become error records and issue entries, and the aggregator
// always completes with a summary.
func (a *Analyzer) AnalyzeDirectory(root string, opts Options) *DirectoryReport {
	paths, problems := files.Collect(root, IsCodeFile)
	logrus.Infof("Analyzing %d files under '%s'", len(paths), root)

	report := &DirectoryReport{
		DirectoryPath: root,
		FilesAnalyzed: []*FileReport{},
		Summary: Summary{
			Languages: map[string]int{},
			Issues:    []string{},
		},
	}

	for _, path := range paths {
		fileReport := a.AnalyzeFile(path, opts)
		report.FilesAnalyzed = append(report.FilesAnalyzed, fileReport)
		report.Summary.TotalFiles++

		if fileReport.Err != "" {
			report.Summary.Languages["unknown"]++
			report.Summary.Issues = append(report.Summary.Issues,
				fmt.Sprintf("%s: %s", path, fileReport.Err))
			continue
		}

		report.Summary.TotalLines += fileReport.LineCount
		report.Summary.Languages[fileReport.Language]++
		if !fileReport.SyntaxValid {
			message := fileReport.SyntaxError
			if message == "" {
				message = "Syntax error"
			}
			report.Summary.Issues = append(report.Summary.Issues,
				fmt.Sprintf("%s: %s", path, message))
		}
	}

	report.Summary.Issues = append(report.Summary.Issues, problems...)
	report.Summary.IssuesFound = len(report.Summary.Issues)
	return report
}
