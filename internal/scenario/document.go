// Package scenario provides the workflow document model for scenarioflow.
//
// A workflow document is a YAML mapping describing a scenario to execute.
// Only a handful of top-level keys are recognized; everything else is carried
// through verbatim to the agent, which reads the raw YAML text itself.
//
// Key types:
//   - [Document] holds the recognized metadata fields with defaults applied
//   - [Library] catalogs workflow documents discovered in a directory
//
// Recognized keys:
//
//	scenario_name: "Refund Processing"
//	domain: "finance"
//	additional_disclaimers:
//	  - "Amounts are in USD"
//
// Unrecognized keys are permitted and ignored during extraction.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultScenarioName is used when a document omits scenario_name.
const DefaultScenarioName = "Unnamed Scenario"

// DefaultDomain is used when a document omits domain.
const DefaultDomain = "general"

// Document is the metadata extracted from a workflow document.
//
// Fields that are absent from the YAML source receive defaults via [Parse].
// The full document text is not retained here; callers that need the raw
// YAML (e.g. for prompt assembly) keep the original string.
type Document struct {
	// ScenarioName is a human-readable name for the scenario.
	// Defaults to [DefaultScenarioName] when absent.
	ScenarioName string `yaml:"scenario_name"`

	// Domain describes the problem domain the scenario operates in.
	// Defaults to [DefaultDomain] when absent.
	Domain string `yaml:"domain"`

	// AdditionalDisclaimers are free-form caveats attached to the scenario.
	// Extracted for completeness; the agent sees them in the raw YAML anyway.
	AdditionalDisclaimers []string `yaml:"additional_disclaimers"`
}

// Parse parses a workflow document from its YAML text.
//
// Absent recognized fields receive their defaults; absence is never an error.
// Unrecognized top-level keys are ignored. Parse returns an error only when
// the text is not valid YAML, wrapping the parser's diagnostic.
func Parse(text string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("Error parsing workflow YAML: %w", err)
	}

	if doc.ScenarioName == "" {
		doc.ScenarioName = DefaultScenarioName
	}
	if doc.Domain == "" {
		doc.Domain = DefaultDomain
	}

	return &doc, nil
}
