// Package config handles bypass configuration loading and validation.
//
// Configuration is read from a YAML file and validated using struct tags.
// Every field has a default matching the standard network numbering, so a
// missing file or a partial file is fine.
package config
