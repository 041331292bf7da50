package llm

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"
	"github.com/sirupsen/logrus"

	"codescope/config"
)

// OllamaClient is a Generator backed by a local Ollama server.
type OllamaClient struct {
	client *ollama.Ollama
	model  string
}

// NewOllamaClient creates a new client from the loaded configuration.
func NewOllamaClient() (*OllamaClient, error) {
	host := config.AppConfig.Ollama.Host
	model := config.AppConfig.Ollama.Model

	ollamaURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	client := ollama.New(*ollamaURL)

	logrus.Infof("Using Ollama client for host: %s", host)
	logrus.Infof("Using Ollama model: %s", model)

	return &OllamaClient{
		client: client,
		model:  model,
	}, nil
}

// Generate sends a single request through the Ollama Generate API.
func (oc *OllamaClient) Generate(systemMessage, userPrompt string) (string, error) {
	maxPromptLen := config.AppConfig.Analysis.MaxPromptLength
	logrus.Debugf("Sending prompt of %d characters to Ollama (max: %d)", len(userPrompt), maxPromptLen)

	if maxPromptLen > 0 && len(userPrompt) > maxPromptLen {
		logrus.Warnf("Prompt is being truncated from %d to %d characters.", len(userPrompt), maxPromptLen)
		userPrompt = userPrompt[:maxPromptLen]
	}

	res, err := oc.client.Generate(
		oc.client.Generate.WithModel(oc.model),
		oc.client.Generate.WithSystem(systemMessage),
		oc.client.Generate.WithPrompt(userPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("Ollama Generate API call failed: %w", err)
	}

	if res.Done {
		if res.Response != "" {
			logrus.Debug("Response received from Ollama.")
			// Models occasionally wrap the whole answer in code fences.
			return strings.TrimSpace(strings.Trim(res.Response, "```")), nil
		}
		return "", fmt.Errorf("empty Ollama response marked as done")
	}

	return "", fmt.Errorf("Ollama request did not complete (unexpected streaming behavior)")
}
