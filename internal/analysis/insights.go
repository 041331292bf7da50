package analysis

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Collaborator-backed free-text fields. A generator failure never surfaces
// as an analysis error: the field carries a short fallback message instead,
// so the report shape stays stable for callers.

const noGeneratorMessage = "no language model configured"

func (a *Analyzer) aiInsights(code, language string) string {
	if a.generator == nil {
		return fmt.Sprintf("AI analysis failed: %s", noGeneratorMessage)
	}
	prompt := fmt.Sprintf(`Analyze this %s code and provide insights:

%s

Please provide:
1. Code quality assessment
2. Potential issues or bugs
3. Performance considerations
4. Best practices suggestions
5. Overall architecture assessment

Be concise but thorough.`, language, code)

	response, err := a.generator.Generate("You are an expert code reviewer.", prompt)
	if err != nil {
		logrus.Debugf("Insight generation failed: %v", err)
		return fmt.Sprintf("AI analysis failed: %v", err)
	}
	return response
}

func (a *Analyzer) improvementSuggestions(code, language string) string {
	if a.generator == nil {
		return fmt.Sprintf("Improvement analysis failed: %s", noGeneratorMessage)
	}
	prompt := fmt.Sprintf(`Review this %s code and suggest specific improvements:

%s

Focus on:
- Code structure and organization
- Performance optimizations
- Error handling
- Readability improvements
- Security considerations

Provide concrete, actionable suggestions.`, language, code)

	response, err := a.generator.Generate("You are an expert code reviewer.", prompt)
	if err != nil {
		logrus.Debugf("Improvement suggestion generation failed: %v", err)
		return fmt.Sprintf("Improvement analysis failed: %v", err)
	}
	return response
}

func (a *Analyzer) generateDocumentation(code, language string) string {
	if a.generator == nil {
		return fmt.Sprintf("Documentation generation failed: %s", noGeneratorMessage)
	}
	prompt := fmt.Sprintf(`Generate comprehensive documentation for this %s code:

%s

Include:
- Module/class/function descriptions
- Parameter documentation
- Return value descriptions
- Usage examples
- Any important notes or warnings

Format as markdown.`, language, code)

	response, err := a.generator.Generate("You are a technical writer for software documentation.", prompt)
	if err != nil {
		logrus.Debugf("Documentation generation failed: %v", err)
		return fmt.Sprintf("Documentation generation failed: %v", err)
	}
	return response
}
