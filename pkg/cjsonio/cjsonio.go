// Package cjsonio reads and writes Chemical JSON documents on disk.
//
// The encoding is picked from the file name: ".yaml" and ".yml" files hold
// the document as YAML, anything else as JSON. A trailing ".gz" adds gzip
// compression on top, e.g. "water.cjson.gz" or "water.yaml.gz".
package cjsonio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"sigs.k8s.io/yaml"

	"github.com/macropower/chemicaljson/pkg/cjson"
)

// MaxDocumentSize bounds the decompressed size of a document.
const MaxDocumentSize int64 = 512 << 20

var (
	ErrFailedFileRead   = errors.New("failed to read file")
	ErrFailedFileWrite  = errors.New("failed to write file")
	ErrFailedFileClose  = errors.New("failed to close file")
	ErrDocumentTooLarge = errors.New("document too large")
)

// Format is the text encoding of a document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "json"
}

// Encoding describes how a document is stored.
type Encoding struct {
	Format Format
	Gzip   bool
}

// EncodingFor returns the encoding implied by the name of path.
func EncodingFor(path string) Encoding {
	name := strings.ToLower(filepath.Base(path))

	enc := Encoding{}
	if trimmed, ok := strings.CutSuffix(name, ".gz"); ok {
		enc.Gzip = true
		name = trimmed
	}

	if isYAMLFile(name) {
		enc.Format = FormatYAML
	}

	return enc
}

func isYAMLFile(name string) bool {
	ext := filepath.Ext(name)

	return ext == ".yaml" || ext == ".yml"
}

// ReadFile reads and validates the document at path.
func ReadFile(path string, opts ...cjson.ValidateOption) (*cjson.Document, error) {
	//nolint:gosec // G304 reading user-provided documents is the point.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedFileRead, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close file",
				slog.String("path", path),
				slog.Any("err", err),
			)
		}
	}()

	doc, err := Read(f, EncodingFor(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Read reads a document stored with enc from r and validates it.
func Read(r io.Reader, enc Encoding, opts ...cjson.ValidateOption) (*cjson.Document, error) {
	data, err := ReadAll(r, enc)
	if err != nil {
		return nil, err
	}

	doc, err := cjson.ValidateJSON(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return doc, nil
}

// ReadAll reads a document stored with enc from r and returns it as JSON,
// without validating it.
func ReadAll(r io.Reader, enc Encoding) ([]byte, error) {
	if enc.Gzip {
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedFileRead, err)
		}
		defer func() {
			if err := gzr.Close(); err != nil {
				slog.Error("failed to close gzip reader", slog.Any("err", err))
			}
		}()

		r = gzr
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedFileRead, err)
	}

	if int64(len(data)) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrDocumentTooLarge, MaxDocumentSize)
	}

	if enc.Format == FormatYAML {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: convert yaml: %w", ErrFailedFileRead, err)
		}
	}

	return data, nil
}

// WriteFile writes d to path using the encoding implied by its name.
func WriteFile(path string, d *cjson.Document) error {
	buf := &bytes.Buffer{}
	if err := Write(buf, d, EncodingFor(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306 documents are not secret.
		return fmt.Errorf("%w: %w", ErrFailedFileWrite, err)
	}

	return nil
}

// Write encodes d to w using enc.
func Write(w io.Writer, d *cjson.Document, enc Encoding) error {
	data, err := cjson.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedFileWrite, err)
	}

	if enc.Format == FormatYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("%w: convert yaml: %w", ErrFailedFileWrite, err)
		}
	}

	if !enc.Gzip {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedFileWrite, err)
		}

		return nil
	}

	gzw := gzip.NewWriter(w)
	if _, err := gzw.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedFileWrite, err)
	}

	if err := gzw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedFileClose, err)
	}

	return nil
}
