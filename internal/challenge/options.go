package challenge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionList is the canonical ordered sequence of answer choices. Option
// identity is positional: index 0 is the first choice.
//
// On the wire the list appears either as a sequence of strings or as a single
// string holding a JSON-encoded array (the form the archive stores). Both
// decode into the same in-memory sequence.
type OptionList []string

// ParseError reports a malformed textual options encoding. It is not
// recovered locally; callers are expected to fail the whole decode.
type ParseError struct {
	Cause error
}

// Error returns a readable message for the malformed encoding.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse options: %v", e.Cause)
}

// Unwrap exposes the underlying decode failure.
func (e *ParseError) Unwrap() error { return e.Cause }

// DecodeOptions parses a JSON-encoded array of strings into an option list.
func DecodeOptions(encoded string) (OptionList, error) {
	var options []string
	if err := json.Unmarshal([]byte(encoded), &options); err != nil {
		return nil, &ParseError{Cause: err}
	}
	return OptionList(options), nil
}

// Encode returns the JSON array form used for textual storage.
func (o OptionList) Encode() (string, error) {
	data, err := json.Marshal([]string(o))
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(data), nil
}

// UnmarshalJSON accepts either a JSON array of strings or a JSON string
// containing the encoded array.
func (o *OptionList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &ParseError{Cause: fmt.Errorf("empty options value")}
	}
	switch trimmed[0] {
	case '[':
		var options []string
		if err := json.Unmarshal(trimmed, &options); err != nil {
			return &ParseError{Cause: err}
		}
		*o = OptionList(options)
		return nil
	case '"':
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return &ParseError{Cause: err}
		}
		decoded, err := DecodeOptions(encoded)
		if err != nil {
			return err
		}
		*o = decoded
		return nil
	default:
		return &ParseError{Cause: fmt.Errorf("options must be a sequence or an encoded sequence")}
	}
}

// MarshalJSON always emits the structured array form.
func (o OptionList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(o))
}

// UnmarshalYAML accepts either a YAML sequence of strings or a scalar string
// containing the JSON-encoded array.
func (o *OptionList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var options []string
		if err := value.Decode(&options); err != nil {
			return &ParseError{Cause: err}
		}
		*o = OptionList(options)
		return nil
	case yaml.ScalarNode:
		var encoded string
		if err := value.Decode(&encoded); err != nil {
			return &ParseError{Cause: err}
		}
		decoded, err := DecodeOptions(encoded)
		if err != nil {
			return err
		}
		*o = decoded
		return nil
	default:
		return &ParseError{Cause: fmt.Errorf("options must be a sequence or an encoded sequence")}
	}
}
