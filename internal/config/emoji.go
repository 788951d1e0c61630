package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadEmojiIDs reads the custom emoji ids used for repeated letters.
// A .yaml or .yml file holds a sequence of strings; anything else is read
// as one id per line. The count is checked by alphabet.NewTables.
func LoadEmojiIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmojiFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var ids []string
		if err := yaml.Unmarshal(data, &ids); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEmojiFile, path, err)
		}
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
		return ids, nil
	default:
		return parseLines(data)
	}
}

func parseLines(data []byte) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		ids = append(ids, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmojiFile, err)
	}
	return ids, nil
}
