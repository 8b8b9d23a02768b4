package toml

import "fmt"

const currentPromptsSchemaVersion = 1

type promptsFileSchema struct {
	Version int      `toml:"version"`
	Name    string   `toml:"name,omitempty"`
	Prompts []string `toml:"prompts"`
}

func (s *promptsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentPromptsSchemaVersion
	}
}

func (s promptsFileSchema) validateVersion() error {
	if s.Version > currentPromptsSchemaVersion {
		return fmt.Errorf("unsupported prompts schema version %d (current %d)", s.Version, currentPromptsSchemaVersion)
	}

	return nil
}
