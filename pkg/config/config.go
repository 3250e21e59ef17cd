// Package config loads and saves configuration files for nodepool-based
// applications. YAML is the primary format, with JSON supported by file
// extension. Values of the form ${VAR_NAME} are substituted from the
// environment before parsing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/nodepool/pkg/errors"
)

// Load reads a configuration file into config, which must be a pointer.
// The format is chosen by file extension: .json is parsed as JSON, anything
// else as YAML. Environment variables referenced as ${VAR_NAME} are
// substituted before parsing; unset variables become empty strings.
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path is controlled by the caller
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	if isJSON(filePath) {
		if err := gojson.Unmarshal([]byte(content), config); err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse JSON config")
		}
		return nil
	}

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML config")
	}
	return nil
}

// Save writes a configuration to a file, using the same extension-based
// format selection as Load.
func Save(filePath string, config interface{}) error {
	var (
		data []byte
		err  error
	)
	if isJSON(filePath) {
		data, err = gojson.MarshalIndent(config, "", "  ")
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal config")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write config file")
	}
	return nil
}

func isJSON(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".json")
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
