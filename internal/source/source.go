package source

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/margin"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Loader reads margin sources and renders them
type Loader struct {
	extension string
	trimmer   margin.Trimmer
	strict    bool
}

// Render is the outcome of trimming one source file
type Render struct {
	Source  string
	Output  string
	Hash    string
	Text    string
	Reports []margin.LineReport
}

// New creates a loader for sources ending in extension
func New(extension string, trimmer margin.Trimmer, strict bool) *Loader {
	return &Loader{
		extension: extension,
		trimmer:   trimmer,
		strict:    strict,
	}
}

// HashFile calculates the SHA1 hash of a file
func (l *Loader) HashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha1.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode reads all of r as text. A UTF-16 byte order mark selects UTF-16 and
// a UTF-8 one is dropped. Anything else is passed through byte for byte, even
// when it is not valid UTF-8.
func Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), nil
	case bytes.HasPrefix(data, bomUTF16BE), bytes.HasPrefix(data, bomUTF16LE):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 text: %w", err)
		}
		return string(decoded), nil
	}
	return string(data), nil
}

// ReadText reads and decodes a text file
func (l *Loader) ReadText(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer file.Close()

	text, err := Decode(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}
	return text, nil
}

// Trim applies the configured trimmer to text
func (l *Loader) Trim(text string) (string, error) {
	if l.strict {
		return l.trimmer.TrimStrict(text)
	}
	return l.trimmer.Trim(text), nil
}

// OutputPath derives the rendered file path by dropping the source extension
func (l *Loader) OutputPath(sourcePath string) (string, error) {
	if !l.IsSource(sourcePath) {
		return "", fmt.Errorf("%s does not end in %s", sourcePath, l.extension)
	}
	out := strings.TrimSuffix(sourcePath, l.extension)
	if filepath.Base(out) == "" || strings.HasSuffix(out, string(filepath.Separator)) {
		return "", fmt.Errorf("%s has no name besides its extension", sourcePath)
	}
	return out, nil
}

// IsSource reports whether path carries the source extension
func (l *Loader) IsSource(path string) bool {
	return strings.HasSuffix(path, l.extension) && len(path) > len(l.extension)
}

// Crawl discovers all source files below folder. Hidden directories are skipped.
func (l *Loader) Crawl(folder string) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warnf("Error accessing %s: %v", path, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			if path != folder && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if l.IsSource(path) {
			sources = append(sources, path)
		}
		return nil
	})

	return sources, err
}

// Render reads, hashes and trims a source file without writing anything
func (l *Loader) Render(sourcePath string) (*Render, error) {
	outputPath, err := l.OutputPath(sourcePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sourcePath, err)
	}
	sum := sha1.Sum(raw)

	text, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	trimmed, err := l.Trim(text)
	if err != nil {
		return nil, fmt.Errorf("trimming %s: %w", sourcePath, err)
	}

	return &Render{
		Source:  sourcePath,
		Output:  outputPath,
		Hash:    hex.EncodeToString(sum[:]),
		Text:    trimmed,
		Reports: l.trimmer.Analyze(text),
	}, nil
}

// Write stores the rendered text at its output path
func (r *Render) Write() error {
	if err := os.WriteFile(r.Output, []byte(r.Text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", r.Output, err)
	}
	return nil
}

// Trimmed returns how many lines had their margin removed
func (r *Render) Trimmed() int {
	return margin.Counts(r.Reports)[margin.Trimmed]
}
