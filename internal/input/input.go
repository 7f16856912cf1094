// Package input reads raw platform results handed over by the fetch step.
//
// This package enables reportmix to:
// - Decode a batch of raw platform results from JSON
// - Decode stored reports so they can be re-cleaned
// - Reject input with the wrong top-level shape before cleaning starts
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

// ErrEmptyInput is returned when there is nothing to decode.
var ErrEmptyInput = errors.New("input is empty")

// StoredReport is the persisted form of a generated report. Only raw data is
// kept, summaries are re-derived on read.
type StoredReport struct {
	ID        string             `json:"id,omitempty"`
	Username  string             `json:"username"`
	Platforms []string           `json:"platforms,omitempty"`
	DateRange *social.DateRange  `json:"dateRange,omitempty"`
	RawData   []social.RawResult `json:"rawData" validate:"dive"`
}

// batch wraps decoded results so they validate as one struct.
type batch struct {
	Results []social.RawResult `json:"results" validate:"dive"`
}

// Decoder decodes and validates input documents.
type Decoder struct {
	validator *Validator
}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{validator: NewValidator()}
}

// DecodeResults decodes a JSON array of raw platform results.
func (d *Decoder) DecodeResults(r io.Reader) ([]social.RawResult, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if data[0] != '[' {
		return nil, errors.New("failed to decode results: input must be a JSON array of platform results")
	}

	var results []social.RawResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	if err := d.validator.Validate(batch{Results: results}); err != nil {
		return nil, err
	}
	return results, nil
}

// DecodeStored decodes a stored report.
func (d *Decoder) DecodeStored(r io.Reader) (*StoredReport, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if data[0] != '{' {
		return nil, errors.New("failed to decode stored report: input must be a JSON object")
	}

	var report StoredReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}
	if err := d.validator.Validate(report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ReadResults decodes raw platform results from a file.
func (d *Decoder) ReadResults(path string) ([]social.RawResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return d.DecodeResults(f)
}

// ReadStored decodes a stored report from a file.
func (d *Decoder) ReadStored(path string) (*StoredReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return d.DecodeStored(f)
}

// readAll returns the trimmed document, never empty.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyInput
	}
	return data, nil
}
