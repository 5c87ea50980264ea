// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-explore/explore"
)

const (
	DefaultOutput = "explore-out"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// A ManifestFile lists datasets to explore and how to start.
type ManifestFile struct {
	Datasets []Source      `yaml:"datasets"`
	Samples  bool          `yaml:"samples"`
	Session  SessionConfig `yaml:"session"`
	Output   OutputConfig  `yaml:"output"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// A Source is one dataset file.
type Source struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`

	// Format overrides the format implied by Path's extension.
	Format Format `yaml:"format"`

	// Delimiter overrides the field separator of CSV and TSV
	// files.
	Delimiter string `yaml:"delimiter"`
}

// SessionConfig is the initial session state.
type SessionConfig struct {
	Dataset string            `yaml:"dataset"`
	Plot    string            `yaml:"plot"`
	Relaxed bool              `yaml:"relaxed"`
	Values  map[string]string `yaml:"values"`
}

// OutputConfig controls where figures go.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultManifest returns a manifest with no datasets and the default
// output settings.
func DefaultManifest() *ManifestFile {
	return &ManifestFile{
		Output: OutputConfig{
			Dir:    DefaultOutput,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// LoadManifest reads a YAML manifest from path. Fields the manifest
// does not set keep their defaults.
func LoadManifest(path string) (*ManifestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, &FormatError{File: path, Msg: err.Error()}
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// ParseManifest parses a YAML manifest. Relative paths in it are
// relative to the current directory.
func ParseManifest(data []byte) (*ManifestFile, error) {
	m := DefaultManifest()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	for i, src := range m.Datasets {
		if src.Path == "" {
			return nil, fmt.Errorf("dataset %d has no path", i)
		}
		if src.Name == "" {
			m.Datasets[i].Name = NameOf(src.Path)
		}
	}
	return m, nil
}

// Open loads every dataset listed in m, followed by the sample
// datasets if m.Samples is set.
func (m *ManifestFile) Open() ([]explore.Dataset, error) {
	var out []explore.Dataset
	for _, src := range m.Datasets {
		if !filepath.IsAbs(src.Path) && m.dir != "" {
			src.Path = filepath.Join(m.dir, src.Path)
		}
		ds, err := loadSource(src)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	if m.Samples {
		out = append(out, Samples(1)...)
	}
	return out, nil
}
