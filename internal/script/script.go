// Package script runs small YAML programs of list operations against the
// listadt API. It backs the listops command and doubles as an executable
// description of how mutable lists, snapshots and conversions interact.
//
// A script names an initial list and a sequence of steps:
//
//	initial: [b, c]
//	steps:
//	  - op: addFront
//	    value: a
//	  - op: freeze
//	    name: v1
//	  - op: remove
//	    value: b
//	  - op: get
//	    index: 0
//	  - op: map
//	    func: upper
//	  - op: thaw
//	    name: v1
package script

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpAddFront = "addFront"
	OpAddBack  = "addBack"
	OpAdd      = "add"
	OpRemove   = "remove"
	OpGet      = "get"
	OpMap      = "map"
	OpFreeze   = "freeze"
	OpThaw     = "thaw"
)

// Script is a decoded list program.
type Script struct {
	// Initial seeds the working list.
	Initial []string `yaml:"initial"`

	// Steps run in order against the working list.
	Steps []Step `yaml:"steps"`
}

// Step is a single operation. Which fields are used depends on Op.
type Step struct {
	Op    string `yaml:"op"`
	Index *int   `yaml:"index,omitempty"`
	Value string `yaml:"value,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Func  string `yaml:"func,omitempty"`
}

// Parse decodes a YAML script from r and checks that every step carries
// the fields its op needs.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	for i, st := range s.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) check() error {
	switch st.Op {
	case OpAddFront, OpAddBack, OpRemove:
		return nil
	case OpAdd, OpGet:
		if st.Index == nil {
			return fmt.Errorf("%w: %s requires index", ErrInvalidScript, st.Op)
		}
	case OpFreeze, OpThaw:
		if st.Name == "" {
			return fmt.Errorf("%w: %s requires name", ErrInvalidScript, st.Op)
		}
	case OpMap:
		if _, ok := converters[st.Func]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownConverter, st.Func)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}
