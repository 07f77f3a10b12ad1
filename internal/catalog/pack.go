package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gzhole/labelshield/internal/normalize"
)

// LoadPacks reads all .yaml files from the packs directory and merges them
// into a copy of base. Pack ingredients replace base entries with the same
// normalized name; pack rules are appended to the tag's existing rules.
// Files whose name starts with "_" are listed but not merged, and so are
// packs that fail to parse or validate.
func LoadPacks(packsDir string, base *Catalog) (*Catalog, []PackInfo, error) {
	var infos []PackInfo

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil, nil
		}
		return nil, nil, err
	}

	merged := base.File()

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(packsDir, entry.Name())
		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		enabled := !strings.HasPrefix(baseName, "_")

		pack, err := loadPack(path)
		if err == nil {
			err = validatePack(pack)
		}
		if err != nil {
			infos = append(infos, PackInfo{
				Name:    baseName,
				Enabled: enabled,
				Path:    path,
				Err:     err,
			})
			continue
		}

		info := PackInfo{
			Name:            pack.Name,
			Description:     pack.Description,
			Version:         pack.PackVersion,
			Author:          pack.Author,
			Enabled:         enabled,
			Path:            path,
			IngredientCount: len(pack.Ingredients),
			RuleCount:       countRules(pack.Rules),
		}
		if info.Name == "" {
			info.Name = baseName
		}
		infos = append(infos, info)

		if !enabled {
			continue
		}

		mergePackInto(&merged, pack)
	}

	result, err := New(merged)
	if err != nil {
		return nil, infos, err
	}
	return result, infos, nil
}

func loadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse pack %s: %w", path, err)
	}

	return &pack, nil
}

func validatePack(pack *Pack) error {
	for tag, rules := range pack.Rules {
		for i, r := range rules {
			if err := validateRule(r); err != nil {
				return fmt.Errorf("rule %d for tag %q: %w", i, tag, err)
			}
		}
	}
	return nil
}

// mergePackInto merges a pack's ingredients and rules into the target file.
func mergePackInto(target *File, pack *Pack) {
	for name, ing := range pack.Ingredients {
		key := normalize.Name(name)
		if key == "" {
			continue
		}
		target.Ingredients[key] = cloneIngredient(ing)
	}

	for tag, rules := range pack.Rules {
		target.Rules[tag] = append(target.Rules[tag], rules...)
	}
}

func countRules(rules map[string][]ConflictRule) int {
	n := 0
	for _, r := range rules {
		n += len(r)
	}
	return n
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
