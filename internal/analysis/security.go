package analysis

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"codescope/internal/llm"
)

// securityRule pairs a dangerous-construct substring with its finding
// message. Containment is plain substring search, not token-aware, so a
// match inside a string literal or comment still fires; fixing that would
// require a full scanner.
type securityRule struct {
	pattern string
	message string
}

// Static rules apply to python sources only; other languages get findings
// solely from the collaborator pass.
var pythonSecurityRules = []securityRule{
	{"eval", "Use of eval() can be dangerous"},
	{"exec", "Use of exec() can be dangerous"},
	{"os.system", "Use of os.system() can be vulnerable to injection"},
	{"subprocess.call", "Check subprocess.call() for injection vulnerabilities"},
	{"pickle.loads", "Pickle deserialization can be dangerous"},
	{"yaml.load", "Use yaml.safe_load() instead of yaml.load()"},
	{"shell=True", "subprocess with shell=True can be vulnerable"},
	{"input(", "raw_input/input can be dangerous in Python 2"},
}

const securityCleanMarker = "No security issues"

// ScanSecurity runs the static rule pass and, when a generator is available,
// the collaborator augmentation pass. Collaborator faults are swallowed: no
// finding is added and no error surfaces.
func ScanSecurity(code, language string, generator llm.Generator) []string {
	issues := []string{}

	if language == "python" {
		for _, rule := range pythonSecurityRules {
			if strings.Contains(code, rule.pattern) {
				issues = append(issues, rule.message)
			}
		}
	}

	if generator == nil {
		return issues
	}

	prompt := fmt.Sprintf(`Analyze this %s code for security vulnerabilities:

%s

Look for:
- SQL injection risks
- XSS vulnerabilities
- Command injection
- Insecure random number generation
- Hardcoded credentials
- Unsafe file operations
- Input validation issues

List any security concerns found.`, language, code)

	response, err := generator.Generate("You are a security code reviewer.", prompt)
	if err != nil {
		logrus.Debugf("Security augmentation pass failed: %v", err)
		return issues
	}
	if !strings.Contains(response, securityCleanMarker) {
		issues = append(issues, "AI Security Analysis: "+response)
	}
	return issues
}
