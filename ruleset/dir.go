package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gnolang/tokre"
)

var ruleFileExtensions = []string{".yaml", ".yml"}

// LoadDir walks root and compiles every rule file it finds,
// concatenating the passes. Files are visited in sorted path order so
// pass order is stable across runs; within a file, document order is
// kept.
func LoadDir(root string) ([]tokre.Pass, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if isRuleFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	sort.Strings(paths)

	var passes []tokre.Pass
	for _, path := range paths {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		passes = append(passes, loaded...)
	}
	return passes, nil
}

func isRuleFile(path string) bool {
	ext := filepath.Ext(path)
	for _, target := range ruleFileExtensions {
		if ext == target {
			return true
		}
	}
	return false
}
