// Package server exposes the analyzer over HTTP: project upload analysis,
// snippet analysis, and a health check.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"codescope/internal/analysis"
	"codescope/internal/llm"
)

// Server wires the HTTP handlers to an Analyzer.
type Server struct {
	analyzer *analysis.Analyzer
}

// New creates a Server. The generator may be nil; the optional AI-backed
// fields then degrade the same way they do on the CLI path.
func New(generator llm.Generator) *Server {
	return &Server{analyzer: analysis.New(generator)}
}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", corsMiddleware(s.analyzeHandler))
	mux.HandleFunc("/analyze/snippet", corsMiddleware(s.snippetHandler))
	mux.HandleFunc("/health", corsMiddleware(healthCheckHandler))
	return mux
}

// ListenAndServe starts the server on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logrus.Infof("Starting server on %s...", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// corsMiddleware handles cross-origin requests.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Cache-Control")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// analyzeHandler accepts a multipart project upload, materializes it in a
// temporary directory, and returns the aggregated directory report. Flags
// arrive as form fields: deep_analysis, generate_docs, security_scan.
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	tempDir, err := os.MkdirTemp("", "uploaded-project-")
	if err != nil {
		http.Error(w, "Error creating temporary directory", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tempDir)

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	for _, fileHeader := range uploads {
		if err := saveUpload(tempDir, fileHeader); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	opts := analysis.Options{
		DeepAnalysis: r.FormValue("deep_analysis") == "true",
		GenerateDocs: r.FormValue("generate_docs") == "true",
		SecurityScan: r.FormValue("security_scan") == "true",
	}

	report := s.analyzer.AnalyzeDirectory(tempDir, opts)
	writeJSON(w, report)
}

// saveUpload writes one uploaded file under dir, recreating the relative
// directory structure sent by the client. The filename is cleaned to keep
// uploads inside the temporary directory.
func saveUpload(dir string, header *multipart.FileHeader) error {
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("error opening uploaded file")
	}
	defer file.Close()

	destPath := filepath.Join(dir, filepath.Clean("/"+header.Filename))
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return fmt.Errorf("error creating directory structure")
	}

	destFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("error creating file in temporary directory")
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		return fmt.Errorf("error copying file content")
	}
	return nil
}

// SnippetRequest is the body of POST /analyze/snippet.
type SnippetRequest struct {
	Code         string `json:"code"`
	Language     string `json:"language"`
	DeepAnalysis bool   `json:"deep_analysis"`
}

// snippetHandler analyzes an in-memory code snippet.
func (s *Server) snippetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, "Missing 'code' field", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = "python"
	}

	report := s.analyzer.AnalyzeSource(req.Code, req.Language, req.DeepAnalysis)
	writeJSON(w, report)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}
