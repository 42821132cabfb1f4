// SPDX-License-Identifier: MIT
// Package: fixture
//
// codec.go — YAML documents for instances and candidates.
//
// Instance document:
//
//	kind: beltway
//	boundary: 13
//	points: [0, 3, 8, 11]          # optional: the hidden solution
//	distances: [0, 2, 3, 3, 5, 5, 5, 8, 8, 8, 10, 10, 11, 13]
//
// Candidate document:
//
//	boundary: 13
//	points: [11, 0, 8, 3]          # any order
//
// Decoding canonicalises distances, checks that their count matches one of
// the size laws and that the largest equals the boundary. When the document
// carries points, they must reproduce the distances.

package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/distgeo/digest"
	"gopkg.in/yaml.v3"
)

type instanceDoc struct {
	Kind      string  `yaml:"kind"`
	Boundary  int64   `yaml:"boundary"`
	Points    []int64 `yaml:"points,omitempty,flow"`
	Distances []int64 `yaml:"distances,flow"`
}

type candidateDoc struct {
	Boundary int64   `yaml:"boundary"`
	Points   []int64 `yaml:"points,flow"`
}

// Encode writes in as a YAML document.
func Encode(w io.Writer, in Instance) error {
	doc := instanceDoc{
		Kind:      in.Kind.String(),
		Boundary:  in.Boundary,
		Points:    in.Points,
		Distances: in.Distances,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}

// Decode reads one instance document.
//
// Errors: ErrDecode for syntax errors, an unknown kind, empty distances, a
// distance count that matches no point count, a boundary other than the
// largest distance, or points that do not reproduce the distances.
func Decode(r io.Reader) (Instance, error) {
	var doc instanceDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Instance{}, fmt.Errorf("Decode: %v: %w", err, ErrDecode)
	}
	kind, err := digest.ParseKind(doc.Kind)
	if err != nil {
		return Instance{}, fmt.Errorf("Decode: kind %q: %w", doc.Kind, errors.Join(ErrDecode, err))
	}
	if len(doc.Distances) == 0 {
		return Instance{}, fmt.Errorf("Decode: no distances: %w", ErrDecode)
	}

	in := Instance{
		Kind:      kind,
		Boundary:  doc.Boundary,
		Points:    doc.Points,
		Distances: digest.Canonical(doc.Distances),
	}
	if _, ok := in.Size(); !ok {
		return Instance{}, fmt.Errorf("Decode: %d distances fit no %v instance: %w", len(doc.Distances), kind, ErrDecode)
	}
	if top, _ := in.Distances.Boundary(); top != in.Boundary {
		return Instance{}, fmt.Errorf("Decode: boundary %d, largest distance %d: %w", in.Boundary, top, ErrDecode)
	}
	if len(in.Points) > 0 {
		ok, err := in.Verify(in.Candidate())
		if err != nil {
			return Instance{}, fmt.Errorf("Decode: points: %v: %w", err, ErrDecode)
		}
		if !ok {
			return Instance{}, fmt.Errorf("Decode: points do not reproduce the distances: %w", ErrDecode)
		}
	}
	return in, nil
}

// EncodeCandidate writes c as a YAML document.
func EncodeCandidate(w io.Writer, c digest.Candidate[int64]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(candidateDoc{Boundary: c.Boundary, Points: c.Points}); err != nil {
		return fmt.Errorf("EncodeCandidate: %w", err)
	}
	return enc.Close()
}

// DecodeCandidate reads one candidate document. Empty points are ErrDecode.
func DecodeCandidate(r io.Reader) (digest.Candidate[int64], error) {
	var doc candidateDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return digest.Candidate[int64]{}, fmt.Errorf("DecodeCandidate: %v: %w", err, ErrDecode)
	}
	if len(doc.Points) == 0 {
		return digest.Candidate[int64]{}, fmt.Errorf("DecodeCandidate: no points: %w", ErrDecode)
	}
	return digest.Candidate[int64]{Points: doc.Points, Boundary: doc.Boundary}, nil
}

// SaveInstance writes in to path, creating or truncating the file.
func SaveInstance(path string, in Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveInstance: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, in)
}

// LoadInstance reads an instance document from path.
func LoadInstance(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("LoadInstance: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadCandidate reads a candidate document from path.
func LoadCandidate(path string) (digest.Candidate[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return digest.Candidate[int64]{}, fmt.Errorf("LoadCandidate: %w", err)
	}
	defer f.Close()
	return DecodeCandidate(f)
}
