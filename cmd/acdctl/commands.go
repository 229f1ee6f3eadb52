package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
	"github.com/acd-annotator/acd-annotator-go/pkg/offsets"
)

// ValidateCmd parses container group files.
type ValidateCmd struct {
	Files   []string `arg:"" help:"Container group JSON files" type:"existingfile"`
	Strict  bool     `help:"Reject coveredText length mismatches instead of warning"`
	Offsets string   `help:"Offset scheme of the files (${enum})" enum:"utf16,codepoint" default:"utf16"`
}

// Run validates every file and fails when any of them is invalid.
func (c *ValidateCmd) Run(g *Globals) error {
	if err := g.setup(); err != nil {
		return err
	}
	v := container.NewValidator(container.ModeFor(!c.Strict), container.WithLogger(log.Logger))

	failed := 0
	for _, path := range c.Files {
		group, err := c.validateFile(v, path)
		if err != nil {
			failed++
			fmt.Fprintf(g.Out, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(g.Out, "%s: ok (%d unstructured, %d structured)\n", path, len(group.Unstructured), len(group.Structured))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(c.Files))
	}
	return nil
}

func (c *ValidateCmd) validateFile(v *container.Validator, path string) (*container.ContainerGroup, error) {
	raw, err := readGroup(path)
	if err != nil {
		return nil, err
	}
	if c.Offsets == offsets.ToUTF16.String() {
		offsets.UTF16ToCodePoints(raw)
	}
	return v.Parse(raw)
}

// AlignCmd rewrites the offsets of a container group file.
type AlignCmd struct {
	File string `arg:"" help:"Container group JSON file" type:"existingfile"`
	To   string `help:"Target offset scheme (${enum})" enum:"codepoint,utf16" default:"codepoint"`
}

// Run prints the realigned document to Out.
func (c *AlignCmd) Run(g *Globals) error {
	if err := g.setup(); err != nil {
		return err
	}
	raw, err := readGroup(c.File)
	if err != nil {
		return err
	}

	dir := offsets.ToCodePoints
	if c.To == offsets.ToUTF16.String() {
		dir = offsets.ToUTF16
	}
	offsets.Realign(raw, dir)
	log.Debug().Str("file", c.File).Stringer("to", dir).Msg("Realigned offsets")

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.File, err)
	}
	_, err = fmt.Fprintf(g.Out, "%s\n", out)
	return err
}

// SchemaCmd describes the container record types.
type SchemaCmd struct {
	Type string `arg:"" optional:"" help:"Record type to describe"`
}

// Run lists record types, or the fields of Type.
func (c *SchemaCmd) Run(g *Globals) error {
	if err := g.setup(); err != nil {
		return err
	}
	if c.Type == "" {
		for _, name := range container.RecordTypes() {
			fmt.Fprintln(g.Out, name)
		}
		return nil
	}

	fields, ok := container.Describe(c.Type)
	if !ok {
		return fmt.Errorf("unknown record type %q", c.Type)
	}
	w := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tFLAGS")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Type, flags(f))
	}
	return w.Flush()
}

func flags(f container.FieldInfo) string {
	var out []string
	if f.Required {
		out = append(out, "required")
	}
	if f.Dynamic {
		out = append(out, "dynamic")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func readGroup(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return container.DecodeRaw(data)
}

func joinKinds() string {
	return strings.Join(annotators.Kinds(), ", ")
}
