package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/bnema/icebreaker-bingo/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	promptsPathKey  = "prompts.path"
	promptsFileMode = 0o644
	promptsDirMode  = 0o755
)

// Source reads the prompt pool from a TOML file. Without a configured path
// the built-in pool is used.
type Source struct {
	path string
}

var _ ports.PromptSource = (*Source)(nil)

func NewSource(cfg *viper.Viper) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := strings.TrimSpace(cfg.GetString(promptsPathKey))
	if path == "" {
		return &Source{}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve prompts path: %w", err)
	}

	return &Source{path: filepath.Clean(absPath)}, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Prompts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == "" {
		return append([]string(nil), domain.DefaultPrompts...), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var file promptsFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode prompts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	prompts := make([]string, 0, len(file.Prompts))
	for _, prompt := range file.Prompts {
		trimmed := strings.TrimSpace(prompt)
		if trimmed == "" {
			continue
		}
		prompts = append(prompts, trimmed)
	}

	if distinct := domain.CountDistinct(prompts); distinct < domain.ItemsPerDraw {
		return nil, fmt.Errorf("%w: %s has %d distinct prompts, need %d", domain.ErrPromptPoolTooSmall, s.path, distinct, domain.ItemsPerDraw)
	}

	return prompts, nil
}

// WritePrompts stores a prompt pool at path in the format Prompts reads.
func WritePrompts(path string, name string, prompts []string) error {
	file := promptsFileSchema{Name: name, Prompts: prompts}
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode prompts file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), promptsDirMode); err != nil {
		return fmt.Errorf("create prompts directory: %w", err)
	}

	if err := os.WriteFile(path, data, promptsFileMode); err != nil {
		return fmt.Errorf("write prompts file: %w", err)
	}

	return nil
}
