package listadt

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-listadt/internal/sequence"
)

// Both flavours encode as a plain JSON array or YAML sequence. Only *Mutable
// can be decoded into; decoding replaces its contents.

// ToJSON returns the JSON array encoding of the elements.
func (l *Mutable[T]) ToJSON() ([]byte, error) { return json.Marshal(l.seq.Values()) }

// ToJSON returns the JSON array encoding of the elements.
func (l *Immutable[T]) ToJSON() ([]byte, error) { return json.Marshal(l.seq.Values()) }

// MarshalJSON implements json.Marshaler.
func (l *Mutable[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// MarshalJSON implements json.Marshaler.
func (l *Immutable[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// UnmarshalJSON replaces the contents of l with the decoded JSON array.
// On error l is left unchanged.
func (l *Mutable[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("listadt: decode json: %w", err)
	}
	l.seq = sequence.From(items)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l *Mutable[T]) MarshalYAML() (any, error) { return l.seq.Values(), nil }

// MarshalYAML implements yaml.Marshaler.
func (l *Immutable[T]) MarshalYAML() (any, error) { return l.seq.Values(), nil }

// UnmarshalYAML replaces the contents of l with the decoded YAML sequence.
// On error l is left unchanged.
func (l *Mutable[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("listadt: decode yaml: %w", err)
	}
	l.seq = sequence.From(items)
	return nil
}

// String returns the JSON encoding of the elements, e.g. "[1,2,3]", falling
// back to fmt formatting when the elements cannot be encoded. The format is
// meant for debugging only.
func (l *Mutable[T]) String() string { return render(l.seq.Values()) }

// String returns the JSON encoding of the elements. See [Mutable.String].
func (l *Immutable[T]) String() string { return render(l.seq.Values()) }

func render[T any](items []T) string {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Sprintf("%v", items)
	}
	return string(b)
}
