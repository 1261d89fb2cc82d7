package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// ProjectConfigFile is the name of the per-project config file. It is
// searched for in the working directory and every parent up to the
// filesystem root.
const ProjectConfigFile = ".infisical.json"

// ProjectConfig holds the subset of the project config file this tool
// reads. Unknown fields are ignored.
type ProjectConfig struct {
	// WorkspaceID is the project id used for secret fetches when none is
	// supplied via flag or environment.
	WorkspaceID string `json:"workspaceId"`

	// DefaultEnvironment is the environment slug used when none is
	// supplied via flag or environment.
	DefaultEnvironment string `json:"defaultEnvironment"`

	// Path is where the config file was found; empty when no file exists.
	Path string `json:"-"`
}

// FindProjectConfig traverses up from startDir looking for the project
// config file. Returns the file path if found, empty string otherwise.
func FindProjectConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		info, err := os.Stat(candidate)
		if err == nil {
			if !info.IsDir() {
				return candidate, nil
			}
		} else if !os.IsNotExist(err) {
			// Surface anything that's not "file not found" (like permission issues).
			return "", fmt.Errorf("checking for %s at %s: %w", ProjectConfigFile, dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadProjectConfig locates and parses the project config file starting
// from startDir. Absence of the file, absence of fields, and even a file
// that fails to parse are all soft conditions: the returned config simply
// has empty fields, and the invocation carries on with flags, environment
// variables, and fallbacks.
func LoadProjectConfig(startDir string) (*ProjectConfig, error) {
	config := &ProjectConfig{}

	path, err := FindProjectConfig(startDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config, nil
	}
	config.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// The file is JSON-like: comments and trailing commas are tolerated.
	// A file that doesn't parse at all leaves the fields empty rather
	// than failing the run.
	if err := json.Unmarshal(jsonc.ToJSON(data), config); err != nil {
		return &ProjectConfig{Path: path}, nil
	}

	return config, nil
}
