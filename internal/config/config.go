// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads smallvec job files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in a job file.
const (
	AlgorithmHeap  = "heap"
	AlgorithmQuick = "quick"
	AlgorithmAuto  = "auto"
)

// ErrInvalid marks a job file that parsed but failed validation.
var ErrInvalid = errors.New("config: invalid job")

// Job describes one load-sort-search run.
type Job struct {
	Values    []int64 `yaml:"values"`
	Algorithm string  `yaml:"algorithm"` // heap, quick or auto
	Search    []int64 `yaml:"search"`
	Separator string  `yaml:"separator"` // exactly one character
	Output    Output  `yaml:"output"`
}

// Output controls what the command prints besides the sorted values.
type Output struct {
	ShowDropped bool `yaml:"show_dropped"`
	ShowIndex   bool `yaml:"show_index"`
}

// Default returns a job with defaults applied and no values.
func Default() Job {
	return Job{
		Algorithm: AlgorithmAuto,
		Separator: " ",
		Output:    Output{ShowIndex: true},
	}
}

// Load reads and parses the job file at path.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a job from YAML, fills defaults and validates it.
// Unknown keys are rejected at every level. An empty, comment-only or
// null document yields Default().
func Parse(data []byte) (Job, error) {
	job := Default()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Job{}, fmt.Errorf("config: parse: %w", err)
	}
	if isEmptyDocument(&doc) {
		return job, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return Job{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return Job{}, fmt.Errorf("config: decode: %w", err)
	}

	if job.Algorithm == "" {
		job.Algorithm = AlgorithmAuto
	}
	if job.Separator == "" {
		job.Separator = " "
	}
	return job, job.Validate()
}

// isEmptyDocument reports whether doc holds no content or a single null.
func isEmptyDocument(doc *yaml.Node) bool {
	if len(doc.Content) == 0 {
		return true
	}
	n := doc.Content[0]
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// Validate checks field values.
func (j Job) Validate() error {
	switch j.Algorithm {
	case AlgorithmHeap, AlgorithmQuick, AlgorithmAuto:
	default:
		return fmt.Errorf("%w: algorithm %q (want heap, quick or auto)", ErrInvalid, j.Algorithm)
	}
	if utf8.RuneCountInString(j.Separator) != 1 {
		return fmt.Errorf("%w: separator %q must be one character", ErrInvalid, j.Separator)
	}
	return nil
}

// SeparatorRune returns the separator as a rune.
func (j Job) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(j.Separator)
	return r
}
