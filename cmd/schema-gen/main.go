/*
Copyright © 2025 LiamStanDev <liamstandev@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package main generates a JSON schema for icpp's configuration file.
// The generated schema enables IDE autocompletion and validation for
// config.yaml.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/LiamStanDev/icpp/config"
)

var (
	output = flag.String("o", "schema/icpp-config.json", "Output path for JSON schema")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            false,
		AllowAdditionalProperties: false,
	}

	// Type-level doc comments become schema descriptions. Field-level
	// comments are picked up by the reflector on its own.
	if err := reflector.AddGoComments("github.com/LiamStanDev/icpp", "./"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to extract type-level comments: %v\n", err)
	}

	schema := reflector.Reflect(&config.Config{})

	schema.ID = jsonschema.ID("https://github.com/LiamStanDev/icpp/schema/config.json")
	schema.Title = "icpp Configuration"
	schema.Description = "Schema for icpp's global configuration file"

	// Example config to help users understand the structure
	schema.Examples = []interface{}{
		map[string]interface{}{
			"defaults": map[string]interface{}{
				"std":           20,
				"cmake_version": "3.25",
				"license":       "MIT",
				"generator":     "Ninja",
				"build_type":    "Release",
			},
			"author": map[string]interface{}{
				"name":  "Ada Lovelace",
				"email": "ada@example.com",
			},
			"log": map[string]interface{}{
				"level":  "info",
				"format": "color",
			},
		},
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	dir := filepath.Dir(*output)
	if err := os.MkdirAll(dir, config.DirPermReadWriteExec); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Append newline to satisfy end-of-file-fixer
	data = append(data, '\n')

	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	fmt.Printf("✓ Generated JSON schema: %s\n", *output)
	return nil
}
