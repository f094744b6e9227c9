package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/rowctx/core"
	"gopkg.in/yaml.v3"
)

// LoadSidecar loads the YAML descriptor accompanying a CSV source: for
// data.csv it looks for data.yaml next to it. Key order from the descriptor
// is preserved. A missing descriptor is reported as ErrNoSidecar so callers
// can distinguish "no sidecar metadata" from a broken descriptor; the
// retrieval core treats the absent case as valid, silent input.
func LoadSidecar(csvPath string) (core.Metadata, error) {
	yamlPath := strings.TrimSuffix(csvPath, ".csv") + ".yaml"

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Metadata{}, fmt.Errorf("%w: %s", ErrNoSidecar, yamlPath)
		}
		return core.Metadata{}, fmt.Errorf("%w: %w", ErrSidecarUnreadable, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return core.Metadata{}, fmt.Errorf("%w: %w", ErrSidecarUnreadable, err)
	}
	if len(root.Content) == 0 {
		return core.Metadata{}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return core.Metadata{}, fmt.Errorf("%w: top level is not a mapping", ErrSidecarUnreadable)
	}

	var metadata core.Metadata
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		metadata.Set(key.Value, nodeString(value))
	}
	return metadata, nil
}

// nodeString flattens a YAML value node to a single-line string. Scalars
// keep their literal value; sequences and mappings are re-rendered as flow
// YAML.
func nodeString(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	node.Style = yaml.FlowStyle
	out, err := yaml.Marshal(node)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
