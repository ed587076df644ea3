package challenge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a challenge file. Files with
// a .json extension are parsed as JSON, everything else as YAML.
func Load(path string) (Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Challenge{}, fmt.Errorf("read challenge: %w", err)
	}
	parsed, err := parse(data, path)
	if err != nil {
		return Challenge{}, err
	}
	normalized, err := Normalize(parsed)
	if err != nil {
		return Challenge{}, err
	}
	return normalized, nil
}

func parse(data []byte, path string) (Challenge, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (Challenge, error) {
	var parsed Challenge
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return Challenge{}, wrapParse("parse json", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Challenge{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Challenge{}, wrapParse("parse json", err)
	}
	return parsed, nil
}

func parseYAML(data []byte) (Challenge, error) {
	var parsed Challenge
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return Challenge{}, wrapParse("parse yaml", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Challenge{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Challenge{}, wrapParse("parse yaml", err)
	}
	return parsed, nil
}

// wrapParse keeps a *ParseError from the options decode intact so callers can
// still match on it, and wraps everything else with the stage name.
func wrapParse(stage string, err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return fmt.Errorf("%s: %w", stage, err)
}
