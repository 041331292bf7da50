// Package llm defines the text-generation collaborator consumed by the
// analysis pipeline. The core treats it as opaque, blocking, and fallible;
// callers needing bounded latency enforce it at this boundary.
package llm

// Generator sends a prompt to a language model and returns its free-text
// response.
type Generator interface {
	Generate(systemMessage, userPrompt string) (string, error)
}
