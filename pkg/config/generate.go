package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent produces a starter config file: the defaults
// serialized as TOML with every value commented out, so writing it to
// the config path changes nothing until the user uncomments a line.
func GenerateConfigContent() (string, error) {
	raw, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to serialize defaults: %w", err)
	}

	header := strings.Join([]string{
		"# robots configuration.",
		"# Uncomment a value to override the built-in default.",
		"",
	}, "\n")

	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out every assignment line while leaving
// blank lines, existing comments, and section headers untouched.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
