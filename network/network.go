// Package network describes road networks as YAML documents and turns them
// into core.Graph values.
//
// A document lists its locations and the links between them:
//
//	name: Coclé
//	unit: km
//	nodes: [Penonomé, Universidad, Antón]
//	links:
//	  - {from: Penonomé, to: Universidad, distance: 4.5}
//	  - {from: Universidad, to: Antón, distance: 13}
//
// Structural problems (missing name, duplicate or empty node names, links
// without endpoints) are reported by Parse. Edge semantics (self-loops,
// negative distances, undeclared endpoints in strict mode) are enforced by
// core.Graph during Build, which reports every bad link at once.
package network

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routegraph/core"
)

// DefaultUnit is used when a document does not name its distance unit.
const DefaultUnit = "km"

var (
	// ErrEmptyDocument indicates the input held no YAML document.
	ErrEmptyDocument = errors.New("network: empty document")

	// ErrInvalidNetwork indicates the document failed validation or a link
	// was rejected by the graph.
	ErrInvalidNetwork = errors.New("network: invalid network")
)

//go:embed reference.yaml
var referenceYAML []byte

var validate = validator.New()

// Network is a declarative description of a weighted undirected network.
type Network struct {
	Name  string   `yaml:"name" validate:"required"`
	Unit  string   `yaml:"unit,omitempty"`
	Nodes []string `yaml:"nodes" validate:"unique,dive,required"`
	Links []Link   `yaml:"links" validate:"dive"`
}

// Link is one undirected connection. Distance must be present in the
// document; an explicit 0 is allowed.
type Link struct {
	From     string   `yaml:"from" validate:"required"`
	To       string   `yaml:"to" validate:"required"`
	Distance *float64 `yaml:"distance" validate:"required"`
}

// NewLink returns a Link with the given distance.
func NewLink(from, to string, distance float64) Link {
	return Link{From: from, To: to, Distance: &distance}
}

// Parse decodes and validates one YAML network document.
// Unknown keys are rejected.
func Parse(data []byte) (*Network, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("network: decode: %w", err)
	}
	if n.Unit == "" {
		n.Unit = DefaultUnit
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: read %s: %w", path, err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Reference returns the built-in Coclé road network: eleven towns and ten
// roads. Olá–La Soledad–Aguadulce is joined to Penonomé only through
// El Ingenio, Natá and Rio Grande.
func Reference() (*Network, error) {
	return Parse(referenceYAML)
}

// Validate checks the structural rules of the document. Every violation is
// reported; the result wraps ErrInvalidNetwork.
func (n *Network) Validate() error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	var result *multierror.Error
	for _, fe := range verrs {
		result = multierror.Append(result,
			fmt.Errorf("%w: %s fails %q", ErrInvalidNetwork, fe.Namespace(), fe.Tag()))
	}

	return result.ErrorOrNil()
}

// Build creates a graph from the document. Nodes are declared first, then
// links are added in order. All rejected links are collected into a single
// *multierror.Error wrapping ErrInvalidNetwork; on error no graph is returned.
func (n *Network) Build(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)

	var result *multierror.Error
	for _, id := range n.Nodes {
		if err := g.AddVertex(id); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: node %q: %w", ErrInvalidNetwork, id, err))
		}
	}
	for i, l := range n.Links {
		if l.Distance == nil {
			result = multierror.Append(result,
				fmt.Errorf("%w: link %d (%s–%s): missing distance", ErrInvalidNetwork, i, l.From, l.To))
			continue
		}
		if err := g.AddEdge(l.From, l.To, *l.Distance); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("%w: link %d (%s–%s): %w", ErrInvalidNetwork, i, l.From, l.To, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}
