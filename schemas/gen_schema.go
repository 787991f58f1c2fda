//go:build ignore

// gen_schema.go generates a JSON schema for the templ-gen config file (.templgen.yaml)
// and writes it to templgen-config.schema.json.
//
// Usage:
//
//	go run gen_schema.go [output-path]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	configmanager "github.com/devantler-tech/templ-gen/pkg/io/config-manager/templgen"
	"github.com/invopop/jsonschema"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600

	// domainPattern accepts a DNS name without a leading wildcard.
	domainPattern = `^([a-z0-9]([-a-z0-9]*[a-z0-9])?)(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`
)

func main() {
	if err := run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&configmanager.Config{})

	customizeSchema(schema)

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	outputPath := "templgen-config.schema.json"
	if len(args) > 1 {
		outputPath = args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("create directory for %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, schemaJSON, filePermissions); err != nil {
		return fmt.Errorf("write schema to %s: %w", outputPath, err)
	}

	fmt.Printf("gen_schema: wrote %s (%d bytes)\n", outputPath, len(schemaJSON))

	return nil
}

// customizeSchema applies all schema customizations.
func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = "templ-gen Configuration"
	schema.Description = "JSON schema for the templ-gen config file (.templgen.yaml)"

	// Every key is optional and falls back to its default.
	schema.Required = nil

	if schema.Properties == nil {
		return
	}

	if p, ok := schema.Properties.Get(configmanager.KeyOutputDir); ok && p != nil {
		minLength := uint64(1)
		p.MinLength = &minLength
	}

	if p, ok := schema.Properties.Get(configmanager.KeyNamespace); ok && p != nil {
		p.Pattern = `^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`
	}

	if p, ok := schema.Properties.Get(configmanager.KeyDomain); ok && p != nil {
		p.Pattern = domainPattern
	}
}
