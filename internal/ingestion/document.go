package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/fetch"
)

// Document is a loaded and cleaned source text ready for extraction.
type Document struct {
	SourceFile string    `json:"source_file,omitempty"`
	URL        string    `json:"url,omitempty"`
	Text       string    `json:"text"`
	Hash       string    `json:"hash"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// NewDocument wraps already-loaded text, cleaning it the same way file and
// URL loading do.
func NewDocument(sourceFile, text string) *Document {
	cleaned := CleanText(text)
	return &Document{
		SourceFile: sourceFile,
		Text:       cleaned,
		Hash:       contentHash(cleaned),
		LoadedAt:   time.Now().UTC(),
	}
}

// textExtensions lists the file extensions LoadFile accepts as plain text.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// htmlExtensions lists the file extensions parsed as HTML before cleaning.
var htmlExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// LoadFile reads one document from disk. HTML files are reduced to their
// main body text; anything else with a known extension is treated as plain
// text. Unknown extensions are an error.
func LoadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	text := string(content)
	switch {
	case htmlExtensions[ext]:
		text, err = fetch.ExtractMainText(text, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	case textExtensions[ext]:
		// Plain text passes through.
	default:
		return nil, fmt.Errorf("unsupported file type %q: %s", ext, path)
	}

	cleaned := CleanText(text)
	return &Document{
		SourceFile: filepath.Base(path),
		Text:       cleaned,
		Hash:       contentHash(cleaned),
		LoadedAt:   time.Now().UTC(),
	}, nil
}

// LoadDir loads every supported file directly under dir, in name order.
// Files with unsupported extensions are skipped rather than failing the
// whole batch.
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if textExtensions[ext] || htmlExtensions[ext] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		doc, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
