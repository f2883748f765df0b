package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Yes = "yes"
	No  = "no"
)

// renderStructured emits data as JSON or YAML when the output format asks
// for one, reporting whether it handled the output. Table rendering stays
// with the caller.
func renderStructured(data interface{}) (bool, error) {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding as JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding as YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

func formatBool(value bool) string {
	if value {
		return Yes
	}

	return No
}

func formatOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// formatEpochMicros renders a log timestamp for table output.
func formatEpochMicros(micros int64) string {
	if micros <= 0 {
		return NotAvailable
	}

	return time.UnixMicro(micros).UTC().Format("2006-01-02 15:04:05")
}
