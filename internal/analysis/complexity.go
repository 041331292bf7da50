package analysis

import "strings"

// EstimateComplexity computes line-based metrics for a source text. The
// comment heuristic is calibrated to '#'-style single-line comments and will
// misclassify comments in languages with other markers; that limitation is
// documented behavior. A trailing newline counts as one more (empty) line,
// matching naive split semantics.
func EstimateComplexity(code string, functionCount int) Complexity {
	lines := strings.Split(code, "\n")

	var codeLines, commentLines int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
			commentLines++
		default:
			codeLines++
		}
	}

	return Complexity{
		TotalLines:    len(lines),
		CodeLines:     codeLines,
		CommentLines:  commentLines,
		FunctionCount: functionCount,
		CommentRatio:  float64(commentLines) / float64(max(codeLines, 1)),
	}
}
