package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML file shape. Pointer sections so absent sections
// leave defaults untouched during the merge.
type fileConfig struct {
	Study            *StudyConfig               `yaml:"study"`
	Browser          *BrowserConfig             `yaml:"browser"`
	LLM              *LLMConfig                 `yaml:"llm"`
	LiveState        *LiveStateConfig           `yaml:"live_state"`
	API              *APIConfig                 `yaml:"api"`
	BlobDir          string                     `yaml:"blob_dir"`
	Queue            *QueueConfig               `yaml:"queue"`
	PersonaTemplates map[string]PersonaTemplate `yaml:"persona_templates"`
}

// mergeFromFile overlays the YAML file onto the receiver. Values present in
// the file win; ${VAR} references are expanded from the environment first.
func (c *Config) mergeFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	expanded := os.Expand(string(raw), func(key string) string {
		return os.Getenv(key)
	})

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}

	if fc.Study != nil {
		if err := mergo.Merge(&c.Study, *fc.Study, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging study section: %w", err)
		}
	}
	if fc.Browser != nil {
		if err := mergo.Merge(&c.Browser, *fc.Browser, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging browser section: %w", err)
		}
	}
	if fc.LLM != nil {
		if err := mergo.Merge(&c.LLM, *fc.LLM, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging llm section: %w", err)
		}
	}
	if fc.LiveState != nil {
		if err := mergo.Merge(&c.LiveState, *fc.LiveState, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging live_state section: %w", err)
		}
	}
	if fc.API != nil {
		if err := mergo.Merge(&c.API, *fc.API, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging api section: %w", err)
		}
	}
	if fc.BlobDir != "" {
		c.BlobDir = fc.BlobDir
	}
	if fc.Queue != nil {
		if err := mergo.Merge(c.Queue, *fc.Queue, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging queue section: %w", err)
		}
	}
	if len(fc.PersonaTemplates) > 0 {
		RegisterTemplates(fc.PersonaTemplates)
	}

	return nil
}
