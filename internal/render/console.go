package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// Console prints selected datasets as YAML under an underlined heading.
// Field order follows the record's JSON encoding.
type Console struct {
	out   io.Writer
	names []string
}

// NewConsole prints the datasets named in names; an empty list prints all.
func NewConsole(out io.Writer, names []string) *Console {
	return &Console{out: out, names: names}
}

// LoadDatasets implements collect.Loader.
func (c *Console) LoadDatasets(_ context.Context, datasets []domain.Dataset) error {
	for _, ds := range datasets {
		if len(c.names) > 0 && !slices.Contains(c.names, ds.Name) {
			continue
		}
		if err := c.print(ds); err != nil {
			return fmt.Errorf("print %s: %w", ds.Name, err)
		}
	}
	return nil
}

func (c *Console) print(ds domain.Dataset) error {
	data, err := json.Marshal(ds.Value())
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)

	if _, err := fmt.Fprintf(c.out, "%s\n%s\n", ds.Name, strings.Repeat("=", len(ds.Name))); err != nil {
		return err
	}
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out)
	return err
}

// blockStyle drops the flow and quoting styles JSON input leaves on nodes so
// the encoder picks block layout and quotes only where YAML requires it.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
