// Package schemas embeds the JSON Schemas for llmdp's file formats.
package schemas

import _ "embed"

// FactsSchemaJSON is the schema every facts file must satisfy.
//
//go:embed facts.schema.json
var FactsSchemaJSON string
