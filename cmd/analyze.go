package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"codescope/internal/analysis"
	"codescope/internal/llm"
)

var (
	deepAnalysis bool
	generateDocs bool
	securityScan bool
	jsonOutput   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a source file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := analysis.Options{
			DeepAnalysis: deepAnalysis,
			GenerateDocs: generateDocs,
			SecurityScan: securityScan,
		}

		var generator llm.Generator
		if deepAnalysis || generateDocs || securityScan {
			client, err := llm.NewOllamaClient()
			if err != nil {
				logrus.Warnf("Language model unavailable, continuing without it: %v", err)
			} else {
				generator = client
			}
		}

		analyzer := analysis.New(generator)
		result, err := analyzer.Analyze(args[0], opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		}

		switch report := result.(type) {
		case *analysis.FileReport:
			printFileReport(report)
		case *analysis.DirectoryReport:
			printDirectoryReport(report)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&deepAnalysis, "deep", false, "enable deep AI analysis")
	analyzeCmd.Flags().BoolVar(&generateDocs, "docs", false, "generate documentation")
	analyzeCmd.Flags().BoolVar(&securityScan, "security", false, "run security analysis")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func printFileReport(r *analysis.FileReport) {
	if r.Err != "" {
		fmt.Printf("Error: %s (%s)\n", r.Err, r.FilePath)
		return
	}

	fmt.Printf("File: %s\n", r.FilePath)
	fmt.Printf("Language: %s | Lines: %d | Size: %d bytes\n\n", r.Language, r.LineCount, r.FileSize)

	c := r.Complexity
	fmt.Println("Metrics:")
	fmt.Printf("  Total lines:   %d\n", c.TotalLines)
	fmt.Printf("  Code lines:    %d\n", c.CodeLines)
	fmt.Printf("  Comment lines: %d\n", c.CommentLines)
	fmt.Printf("  Functions:     %d\n", c.FunctionCount)
	fmt.Printf("  Comment ratio: %.2f%%\n", c.CommentRatio*100)

	if r.SyntaxValid {
		fmt.Println("\nSyntax: valid")
	} else {
		fmt.Printf("\nSyntax error: %s\n", r.SyntaxError)
	}

	if len(r.Imports) > 0 {
		fmt.Println("\nImports:")
		for _, imp := range r.Imports {
			fmt.Printf("  %s\n", imp)
		}
	}
	if len(r.Functions) > 0 {
		fmt.Println("\nFunctions:")
		for _, fn := range r.Functions {
			fmt.Printf("  %s (line %d)\n", fn.Name, fn.Line)
		}
	}

	if r.AIInsights != nil {
		fmt.Printf("\nAI insights:\n%s\n", *r.AIInsights)
	}
	if r.Improvements != nil {
		fmt.Printf("\nImprovement suggestions:\n%s\n", *r.Improvements)
	}
	if r.GeneratedDocs != nil {
		fmt.Printf("\nGenerated documentation:\n%s\n", *r.GeneratedDocs)
	}
	if r.SecurityIssues != nil {
		if len(r.SecurityIssues) == 0 {
			fmt.Println("\nSecurity: no findings")
		} else {
			fmt.Println("\nSecurity findings:")
			for _, issue := range r.SecurityIssues {
				fmt.Printf("  - %s\n", issue)
			}
		}
	}
}

func printDirectoryReport(r *analysis.DirectoryReport) {
	fmt.Printf("Directory: %s\n", r.DirectoryPath)
	fmt.Printf("Files: %d | Lines: %d\n", r.Summary.TotalFiles, r.Summary.TotalLines)

	if len(r.Summary.Languages) > 0 {
		fmt.Println("\nLanguages:")
		for lang, count := range r.Summary.Languages {
			fmt.Printf("  %-12s %d\n", lang, count)
		}
	}

	if len(r.Summary.Issues) > 0 {
		fmt.Printf("\nIssues found (%d):\n", r.Summary.IssuesFound)
		for _, issue := range r.Summary.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	} else {
		fmt.Println("\nNo issues found.")
	}
}
