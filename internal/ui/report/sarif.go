// # internal/ui/report/sarif.go
package report

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"lazyimport/internal/engine/lint"
)

// SARIF v2.1.0 schema – see https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json

const (
	sarifSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
	sarifVersion = "2.1.0"

	toolName    = "lazyimport"
	toolVersion = "1.0.0"

	ruleIDHeavyImport = "LAZY001"
)

// sarifReport is the top-level SARIF document.
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	ShortDescription sarifMessage           `json:"shortDescription"`
	DefaultConfig    sarifRuleDefaultConfig `json:"defaultConfiguration"`
}

type sarifRuleDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
}

// GenerateSARIF builds a SARIF v2.1.0 document from the diagnostics of one
// run. File URIs are made relative to projectRoot; absolute paths are never
// included so that reports are safe to share.
func GenerateSARIF(projectRoot string, diagnostics []lint.Diagnostic) ([]byte, error) {
	results := make([]sarifResult, 0, len(diagnostics))
	for _, d := range diagnostics {
		results = append(results, sarifResult{
			RuleID:  ruleIDHeavyImport,
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{
						URI:       relativeURI(projectRoot, d.File),
						URIBaseID: "SRCROOT",
					},
					Region: &sarifRegion{
						StartLine:   d.Location.Line,
						StartColumn: d.Location.Column,
					},
				},
			}},
		})
	}

	doc := sarifReport{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:    toolName,
					Version: toolVersion,
					Rules: []sarifRule{{
						ID:   ruleIDHeavyImport,
						Name: lint.RuleID,
						ShortDescription: sarifMessage{
							Text: "Heavy dependency imported at module top level",
						},
						DefaultConfig: sarifRuleDefaultConfig{Level: "warning"},
					}},
				},
			},
			Results: results,
		}},
	}

	return json.MarshalIndent(doc, "", "  ")
}

func sarifLevel(s lint.Severity) string {
	if s == lint.SeverityError {
		return "error"
	}
	return "warning"
}

func relativeURI(projectRoot, path string) string {
	if projectRoot != "" {
		if rel, err := filepath.Rel(projectRoot, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
