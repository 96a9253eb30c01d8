package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// ManifestFile is the host manifest looked up in the working directory.
const ManifestFile = "package.json"

// reactSections are searched in order for a declared react version.
var reactSections = []string{"dependencies", "peerDependencies", "devDependencies"}

// Manifest is a parsed host package.json.
type Manifest struct {
	Path string
	v    *viper.Viper

	// block is the raw frontend-cli value, looked up by exact key. viper
	// folds key case, package.json does not.
	block json.RawMessage
}

// LoadManifest reads and parses the host manifest at path. Comments and
// trailing commas are tolerated.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	return ParseManifest(path, data)
}

// ParseManifest parses manifest content. path is only used in error messages.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	clean := jsonc.ToJSON(data)

	v := viper.New()
	v.SetConfigType("json")

	if err := v.ReadConfig(bytes.NewReader(clean)); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(clean, &top); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	m := &Manifest{Path: path, v: v}
	if raw, ok := top[BlockKey]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		m.block = raw
	}

	return m, nil
}

// Resolve extracts the frontend-cli block from the manifest. It returns
// ErrConfigMissing when the block is absent and an error wrapping
// ErrConfigInvalid when the block fails validation.
func Resolve(m *Manifest) (*Config, error) {
	if m.block == nil {
		return nil, ErrConfigMissing
	}

	var block any
	if err := json.Unmarshal(m.block, &block); err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", BlockKey, err)
	}

	// The schema sees the block with its original key case, so a
	// "Components" key does not satisfy the required "components".
	if err := ValidateBlock(block); err != nil {
		return nil, err
	}

	componentsKey := BlockKey + ".components"
	if err := m.v.BindEnv(componentsKey, ComponentsEnv); err != nil {
		return nil, fmt.Errorf("binding %s: %w", ComponentsEnv, err)
	}

	var cfg Config
	if err := m.v.UnmarshalKey(BlockKey, &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", BlockKey, err)
	}

	// UnmarshalKey reads the raw block; leaf lookups honour the env binding.
	cfg.ComponentsRoot = m.v.GetString(componentsKey)

	return &cfg, nil
}

// Host returns facts about the host project.
func (m *Manifest) Host() HostInfo {
	var info HostInfo

	for _, section := range reactSections {
		if r := m.v.GetString(section + ".react"); r != "" {
			info.ReactRange = r

			break
		}
	}

	return info
}
