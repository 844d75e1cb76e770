// Package schemas holds the JSON Schemas describing passkit's machine-readable output.
package schemas

import "embed"

// Schema file names.
const (
	StrengthReport = "strength_report.schema.json"
	GenerateResult = "generate_result.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
