// Package export writes metric results to a directory, one file per
// metric named after the metric (degree, eigen, katz, pagerank,
// betweenness, closeness, clustering) plus a metadata.json sidecar.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netrank/core"
)

// ErrUnknownFormat is returned for a format outside Formats.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects the encoding of score files.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, TOML}

// MetadataFile is the sidecar name inside the output directory.
const MetadataFile = "metadata.json"

// ParseFormat maps a case-insensitive name ("yml" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Metadata describes the exported graph.
type Metadata struct {
	NumNodes int `json:"num_nodes"`
	NumEdges int `json:"num_edges"`
}

// Writer writes score files into Dir.
type Writer struct {
	Dir    string
	Format Format
}

// NewWriter creates dir if needed and returns a Writer for format.
func NewWriter(dir string, format Format) (*Writer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", dir, err)
	}
	return &Writer{Dir: dir, Format: format}, nil
}

// Path returns the file a metric named name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+"."+string(w.Format))
}

// WriteScores encodes scores into Path(name) and returns that path.
func (w *Writer) WriteScores(name string, scores core.ScoreMap) (string, error) {
	data, err := Encode(w.Format, scores)
	if err != nil {
		return "", err
	}
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// WriteMetadata writes metadata.json for g.
func (w *Writer) WriteMetadata(g *core.Graph) (string, error) {
	data, err := json.MarshalIndent(Metadata{NumNodes: g.NodeCount(), NumEdges: g.EdgeCount()}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: encode metadata: %w", err)
	}
	path := filepath.Join(w.Dir, MetadataFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// Encode renders scores as a flat node → score mapping. Keys are sorted
// in every format so files are byte-stable across runs.
func Encode(format Format, scores core.ScoreMap) ([]byte, error) {
	m := map[string]float64(scores)
	switch format {
	case JSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export: json: %w", err)
		}
		return append(data, '\n'), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(sortedNode(m)); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
		return buf.Bytes(), nil
	case TOML:
		data, err := toml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("export: toml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Decode parses data produced by Encode.
func Decode(format Format, data []byte) (core.ScoreMap, error) {
	var m map[string]float64
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &m)
	case YAML:
		err = yaml.Unmarshal(data, &m)
	case TOML:
		err = toml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("export: decode %s: %w", format, err)
	}
	return core.ScoreMap(m), nil
}

// sortedNode builds a YAML mapping node with keys in lexical order.
func sortedNode(m map[string]float64) *yaml.Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		var val yaml.Node
		_ = val.Encode(m[k])
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node
}
