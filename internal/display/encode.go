package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gauthierbraillon/reportmix/internal/aggregator"
)

// Format is an output format accepted by the CLI.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be table, json, or yaml", s)
	}
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes v as YAML. Values go through their JSON encoding first,
// so YAML keys match the JSON keys and raw numeric timestamps stay numbers.
func EncodeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// blockStyle drops the flow and quoting styles JSON input leaves on nodes.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// ReportDocument is the machine readable form of a report: the combined
// report plus the per-platform engagement rows and highlights.
type ReportDocument struct {
	*aggregator.Report
	Breakdown  []aggregator.PlatformEngagement `json:"breakdown" yaml:"breakdown"`
	Highlights aggregator.Highlights           `json:"highlights" yaml:"highlights"`
}

// NewReportDocument builds the JSON and YAML document for report.
func NewReportDocument(report *aggregator.Report) ReportDocument {
	return ReportDocument{
		Report:     report,
		Breakdown:  aggregator.Breakdown(report),
		Highlights: aggregator.BuildHighlights(report),
	}
}
