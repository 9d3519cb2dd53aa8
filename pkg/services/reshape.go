package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"shici/pkg/json"
	"shici/pkg/models"
)

var jsonNull = []byte("null")

// Transform reshapes the JSON array at inputPath and writes it to outputPath
// as indented JSON. Any failure is returned as a *TransformError and
// nothing is written.
func Transform(inputPath, outputPath string) (int, error) {
	return TransformWithFormat(inputPath, outputPath, FormatJSON)
}

// TransformWithFormat is Transform with a selectable output encoding.
func TransformWithFormat(inputPath, outputPath string, format Format) (int, error) {
	records, err := LoadRecords(inputPath)
	if err != nil {
		return 0, err
	}

	poems := Reshape(records)

	if err := SavePoems(outputPath, poems, format); err != nil {
		return 0, &TransformError{Kind: GenericFailure, Path: outputPath, Err: err}
	}
	return len(poems), nil
}

// LoadRecords reads and decodes the input array. The whole file is read
// before any record is inspected.
func LoadRecords(path string) ([]models.InputRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TransformError{Kind: SourceNotFound, Path: path, Err: err}
		}
		return nil, &TransformError{Kind: GenericFailure, Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &TransformError{Kind: GenericFailure, Path: path, Err: fmt.Errorf("file %s is not valid UTF-8", path)}
	}

	records, err := DecodeRecords(content)
	if err != nil {
		return nil, withPath(err, path)
	}
	return records, nil
}

// DecodeRecords parses a JSON array of records. The top level must be an
// array; each element must be an object with a string "title" and an
// array-of-strings "content". Other keys are ignored.
func DecodeRecords(content []byte) ([]models.InputRecord, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &TransformError{Kind: MalformedInput, Err: errors.New("empty document")}
	}
	if isNull(content) {
		return nil, &TransformError{Kind: MalformedInput, Err: errors.New("top-level value is not an array")}
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(content, &elements); err != nil {
		return nil, &TransformError{Kind: MalformedInput, Err: err}
	}

	records := make([]models.InputRecord, 0, len(elements))
	for i, raw := range elements {
		rec, err := decodeRecord(i, raw)
		if err != nil {
			return nil, &TransformError{Kind: GenericFailure, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(index int, raw json.RawMessage) (models.InputRecord, error) {
	var fields map[string]json.RawMessage
	if isNull(raw) {
		return models.InputRecord{}, fmt.Errorf("record %d is not an object", index)
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.InputRecord{}, fmt.Errorf("record %d is not an object: %w", index, err)
	}

	rawTitle, ok := fields["title"]
	if !ok {
		return models.InputRecord{}, &MissingFieldError{Index: index, Field: "title"}
	}
	rawContent, ok := fields["content"]
	if !ok {
		return models.InputRecord{}, &MissingFieldError{Index: index, Field: "content"}
	}

	var rec models.InputRecord
	if isNull(rawTitle) || json.Unmarshal(rawTitle, &rec.Title) != nil {
		return models.InputRecord{}, &FieldTypeError{Index: index, Field: "title", Want: "a string"}
	}
	lines, err := decodeLines(rawContent)
	if err != nil {
		return models.InputRecord{}, &FieldTypeError{Index: index, Field: "content", Want: "an array of strings"}
	}
	rec.Content = lines
	return rec, nil
}

// decodeLines requires a non-null array whose items are all non-null strings.
func decodeLines(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, errors.New("null content")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		if isNull(item) {
			return nil, fmt.Errorf("line %d is null", i)
		}
		var line string
		if err := json.Unmarshal(item, &line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func withPath(err error, path string) error {
	var te *TransformError
	if errors.As(err, &te) && te.Path == "" {
		te.Path = path
	}
	return err
}

// ReshapeRecord builds the output record for one input record.
func ReshapeRecord(rec models.InputRecord) models.Poem {
	return models.Poem{
		Title:        rec.Title,
		Author:       "",
		Dynasty:      "",
		Content:      strings.Join(rec.Content, "\n") + "\n",
		Appreciation: "",
	}
}

// Reshape maps every record in order. The result is never nil so an
// empty input encodes as [].
func Reshape(records []models.InputRecord) []models.Poem {
	poems := make([]models.Poem, 0, len(records))
	for _, rec := range records {
		poems = append(poems, ReshapeRecord(rec))
	}
	return poems
}

// SavePoems encodes poems in memory and then replaces path with the
// result, so a failed run never leaves a partial file behind.
func SavePoems(path string, poems []models.Poem, format Format) error {
	data, err := EncodePoems(poems, format)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
