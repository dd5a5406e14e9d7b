package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/JRed1989/ambari/internal/presentation/tui"
	"github.com/JRed1989/ambari/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how a state snapshot is written.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatMarkdown, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want yaml, json, markdown or text)", s)
}

// Writer prints snapshots.
type Writer struct {
	Format Format
	// Render turns markdown into terminal output. Nil writes raw markdown.
	Render func(string) (string, error)
}

// Write prints snapshot with slices in name order.
func (d Writer) Write(w io.Writer, snapshot map[domain.ModelName]any) error {
	names := make([]string, 0, len(snapshot))
	for k := range snapshot {
		names = append(names, string(k))
	}
	sort.Strings(names)

	ordered := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		ordered[string(k)] = v
	}

	switch d.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ordered)

	case FormatMarkdown:
		md, err := Markdown(names, ordered)
		if err != nil {
			return err
		}
		if d.Render != nil {
			if md, err = d.Render(md); err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
		}
		_, err = io.WriteString(w, md)
		return err

	case FormatText:
		for i, name := range names {
			tui.Header(w, i, name)
			out, err := yaml.Marshal(ordered[name])
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", name, err)
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ordered); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return enc.Close()
}

// Markdown renders one section per slice: a bullet list for collections of
// scalars, a fenced YAML block otherwise.
func Markdown(names []string, state map[string]any) (string, error) {
	var b strings.Builder
	b.WriteString("# Application state\n")

	for _, name := range names {
		fmt.Fprintf(&b, "\n## %s\n\n", name)

		if items, ok := state[name].([]string); ok {
			if len(items) == 0 {
				b.WriteString("_empty_\n")
			}
			for _, item := range items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			continue
		}

		out, err := yaml.Marshal(state[name])
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", name, err)
		}
		b.WriteString("```yaml\n")
		b.Write(out)
		b.WriteString("```\n")
	}
	return b.String(), nil
}
