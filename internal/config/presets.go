package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/max2697/SXSW-for-agents/internal/search"
	"github.com/max2697/SXSW-for-agents/internal/shortlist"
)

// PresetsFile is the optional YAML overlay for the shortlist topics and the
// synonym table. Either section may be omitted to keep the built-ins.
type PresetsFile struct {
	Synonyms []search.SynonymGroup `yaml:"synonyms"`
	Topics   []shortlist.Preset    `yaml:"topics"`
}

// ApplyPresetsFile reads the YAML overlay at path and installs it into the
// search and shortlist packages. Must run during startup, before queries.
func ApplyPresetsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %w", err)
	}

	var file PresetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse presets file: %w", err)
	}

	if len(file.Synonyms) > 0 {
		search.LoadSynonymGroups(file.Synonyms)
	}
	if len(file.Topics) > 0 {
		for i, p := range file.Topics {
			primary, err := search.ParseMode(string(p.PrimaryMode))
			if err != nil {
				return fmt.Errorf("topic %q: %w", p.Topic, err)
			}
			file.Topics[i].PrimaryMode = primary
			if p.FallbackQuery != "" {
				fallback, err := search.ParseMode(string(p.FallbackMode))
				if err != nil {
					return fmt.Errorf("topic %q fallback: %w", p.Topic, err)
				}
				file.Topics[i].FallbackMode = fallback
			}
		}
		shortlist.LoadPresets(file.Topics)
	}
	return nil
}
