package script

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-listadt/listadt"
)

// Write renders res to w in the given format.
func Write(w io.Writer, res *Result, format string) error {
	switch format {
	case FormatText:
		return writeText(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case FormatTree:
		if _, err := fmt.Fprintln(w, listadt.RenderTree[string]("final", res.Final)); err != nil {
			return err
		}
		for _, s := range res.Snapshots {
			if _, err := fmt.Fprintln(w, listadt.RenderTree[string](s.Name, s.List)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

func writeText(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "final: %s\n", res.Final); err != nil {
		return err
	}
	for _, s := range res.Snapshots {
		if _, err := fmt.Fprintf(w, "snapshot %s: %s\n", s.Name, s.List); err != nil {
			return err
		}
	}
	for _, r := range res.Reads {
		if _, err := fmt.Fprintf(w, "get %d (step %d): %s\n", r.Index, r.Step, r.Value); err != nil {
			return err
		}
	}
	if res.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "skipped: %d\n", res.Skipped); err != nil {
			return err
		}
	}
	return nil
}
