package dictionary

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"glossary-extractor/internal/filewalker"
	"glossary-extractor/internal/textutil"
)

var (
	// ErrUnsupportedFormat marks a dictionary file whose extension is not .json or .csv.
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")
	// ErrMissingField marks a record without a required word or meaning.
	ErrMissingField = errors.New("missing required field")
	// ErrEmptyWord marks a record whose word is the empty string.
	ErrEmptyWord = errors.New("empty word")
)

// SourceExtensions lists the dictionary formats discovered when walking directories.
var SourceExtensions = []string{".json", ".csv"}

// ParseFile reads a dictionary source and returns its records in file order.
func ParseFile(path string) ([]Entry, error) {
	ext := filewalker.Ext(path)
	if ext != ".json" && ext != ".csv" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}
	content, err := textutil.Decode(raw)
	if err != nil {
		return nil, err
	}

	if ext == ".json" {
		return parseJSON(content)
	}
	return parseCSV(content)
}

type jsonRecord struct {
	Word      *string `json:"word"`
	Meaning   *string `json:"meaning"`
	Reference *string `json:"reference"`
}

func parseJSON(content string) ([]Entry, error) {
	var records []jsonRecord
	if err := json.Unmarshal([]byte(content), &records); err != nil {
		return nil, fmt.Errorf("parse json dictionary: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		if r.Word == nil {
			return nil, fmt.Errorf("record %d: %w: word", i+1, ErrMissingField)
		}
		if r.Meaning == nil {
			return nil, fmt.Errorf("record %d: %w: meaning", i+1, ErrMissingField)
		}
		e := Entry{Word: *r.Word, Meaning: *r.Meaning}
		if r.Reference != nil {
			e.Reference = *r.Reference
		}
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseCSV(content string) ([]Entry, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	wordCol, ok := columns["word"]
	if !ok {
		return nil, fmt.Errorf("header: %w: word", ErrMissingField)
	}
	meaningCol, ok := columns["meaning"]
	if !ok {
		return nil, fmt.Errorf("header: %w: meaning", ErrMissingField)
	}
	refCol, hasRef := columns["reference"]

	var entries []Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if wordCol >= len(row) {
			return nil, fmt.Errorf("line %d: %w: word", line, ErrMissingField)
		}
		if meaningCol >= len(row) {
			return nil, fmt.Errorf("line %d: %w: meaning", line, ErrMissingField)
		}

		e := Entry{Word: row[wordCol], Meaning: row[meaningCol]}
		if hasRef && refCol < len(row) {
			e.Reference = row[refCol]
		}
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func validate(e Entry) error {
	if e.Word == "" {
		return ErrEmptyWord
	}
	return nil
}
