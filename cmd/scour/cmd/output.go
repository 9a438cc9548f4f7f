package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iiroan/scour/internal/options"
	"github.com/iiroan/scour/internal/ui"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML, outputJSON:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use text, yaml, or json)", format)
}

// writeStructured encodes v as YAML or JSON.
func writeStructured(w io.Writer, v any, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return validateOutput(format)
}

func renderSnapshot(w io.Writer, snap options.Snapshot, format string) error {
	if format != outputText {
		return writeStructured(w, snap, format)
	}

	var b strings.Builder

	b.WriteString(ui.SectionTitle.Render("General") + "\n")
	for _, key := range sortedKeys(snap.General) {
		value := snap.General[key]
		if options.IsBooleanKey(key) {
			on, err := options.ParseBool(value)
			if err == nil {
				fmt.Fprintf(&b, "  %s\n", ui.Flag(on, key))
				continue
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", ui.KeyStyle.Render(key+":"), value)
	}

	b.WriteString(ui.SectionTitle.Render("Preserved languages") + "\n")
	if len(snap.Languages) == 0 {
		b.WriteString("  " + ui.MutedStyle.Render("none") + "\n")
	} else {
		b.WriteString("  " + strings.Join(snap.Languages, ", ") + "\n")
	}

	b.WriteString(ui.SectionTitle.Render("Tree") + "\n")
	if len(snap.Tree) == 0 {
		b.WriteString("  " + ui.MutedStyle.Render("no nodes set") + "\n")
	}
	for _, id := range sortedKeys(snap.Tree) {
		fmt.Fprintf(&b, "  %s\n", ui.Flag(snap.Tree[id], id))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
