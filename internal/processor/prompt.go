package processor

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

const yamlFence = "```"

// instructionTemplate assembles the natural-language instruction sent to the
// agent. Section order is fixed: domain statement, optional parameters block,
// fenced verbatim document text, step-execution directives, placeholder
// substitution directive.
var instructionTemplate = template.Must(template.New("instruction").Parse(
	`I need to process this workflow YAML for domain '{{.Domain}}':
{{- if .ParamsJSON}}

Parameters:
{{.ParamsJSON}}
{{- end}}

` + yamlFence + `yaml
{{.WorkflowYAML}}
` + yamlFence + `

Please execute this workflow step by step and provide the results for each step.
For each step, indicate the step type, what action was performed, and the outcome.

When executing tools or agents, show the input and output for each execution.
When you see placeholders like {params.some_variable}, replace them with the corresponding value from the parameters.
`))

// instructionData is the template payload for [instructionTemplate].
type instructionData struct {
	Domain       string
	ParamsJSON   string
	WorkflowYAML string
}

// BuildInstruction renders the instruction for a workflow document.
//
// The document text is embedded verbatim inside the fenced block. When params
// is non-empty it is rendered as pretty-printed JSON (keys sorted, so the
// instruction is deterministic for a given input); when empty or nil the
// parameters section is omitted entirely.
func BuildInstruction(domain, workflowYAML string, params map[string]any) (string, error) {
	data := instructionData{
		Domain:       domain,
		WorkflowYAML: workflowYAML,
	}

	if len(params) > 0 {
		encoded, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize parameters: %w", err)
		}
		data.ParamsJSON = string(encoded)
	}

	var sb strings.Builder
	if err := instructionTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render instruction: %w", err)
	}

	return sb.String(), nil
}
