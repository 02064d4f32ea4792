// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// printConfig writes the settings a conversion would use, after merging
// flags, PDF2PNG_* environment variables, and the config file, as YAML.
func printConfig(w io.Writer) error {
	data, err := yaml.Marshal(conversionConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
