package rmagen

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/rocshmem/shmemgen/rmagen/cpp"
)

// ManifestFileName is written next to the header when the manifest is enabled.
const ManifestFileName = "rocshmem_RMA_X.symbols.yaml"

// Manifest lists every symbol declared by the generated header, so build
// tooling can consume the API surface without parsing C++.
type Manifest struct {
	Header    string          `yaml:"header"`
	Guard     string          `yaml:"guard"`
	Namespace string          `yaml:"namespace"`
	Symbols   []ManifestEntry `yaml:"symbols"`
}

// ManifestEntry describes one declaration unit.
type ManifestEntry struct {
	Family      string `yaml:"family"`
	Granularity string `yaml:"granularity"`
	Type        string `yaml:"type"`
	Context     string `yaml:"context"`
	Default     string `yaml:"default"`
}

// BuildManifest converts declaration units into a manifest, preserving order.
func BuildManifest(decls []cpp.Declaration) *Manifest {
	m := &Manifest{
		Header:    cpp.HeaderFileName,
		Guard:     cpp.NewEmitter("").Guard(),
		Namespace: cpp.Namespace,
		Symbols:   make([]ManifestEntry, 0, len(decls)),
	}
	for _, d := range decls {
		m.Symbols = append(m.Symbols, ManifestEntry{
			Family:      d.Family.Fragment(),
			Granularity: d.Granularity.Tag(),
			Type:        d.Type.Spelling,
			Context:     d.Context.Name,
			Default:     d.Default.Name,
		})
	}
	return m
}

// Marshal encodes the manifest as YAML with two-space indentation.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseManifest decodes a manifest previously produced by Marshal.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
