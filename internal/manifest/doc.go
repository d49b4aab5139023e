// Package manifest reads, writes, and validates the .sitegen.yaml record that
// the generator leaves at the root of every project it creates. Validation
// runs the YAML through the embedded JSON Schema in schema/project.schema.json.
package manifest
