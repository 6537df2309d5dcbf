package vmconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
)

type document struct {
	Krun *krunSection `toml:"krun"`
}

type krunSection struct {
	RAMSizeMiB *uint32 `toml:"ram_size_mib"`
	NumVCPUs   *uint32 `toml:"num_vcpus"`
	LogLevel   any     `toml:"log_level"`
}

// Parse decodes the output of `anylinuxfs config`.
// The helper prints bare words such as `log_level = off`; they are quoted
// before decoding. Numeric log levels are mapped to their names.
func Parse(output string) (domain.VMConfig, error) {
	var doc document
	if err := toml.Unmarshal([]byte(QuoteBareValues(output)), &doc); err != nil {
		return domain.VMConfig{}, zerr.Wrap(err, "failed to parse helper config")
	}
	if doc.Krun == nil {
		return domain.VMConfig{}, nil
	}

	cfg := domain.VMConfig{
		RAMMB: doc.Krun.RAMSizeMiB,
		VCPUs: doc.Krun.NumVCPUs,
	}

	switch v := doc.Krun.LogLevel.(type) {
	case nil:
	case string:
		cfg.LogLevel = &v
	case int64:
		name, ok := domain.LogLevelName(v)
		if !ok {
			return domain.VMConfig{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig,
				fmt.Sprintf("invalid numeric log level: %d, expected 0-5 (off=0, error=1, warn=2, info=3, debug=4, trace=5)", v)),
				"log_level", v)
		}
		cfg.LogLevel = &name
	default:
		return domain.VMConfig{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig,
			"expected string or integer for log_level"), "log_level", fmt.Sprint(v))
	}

	return cfg, nil
}

// QuoteBareValues quotes unquoted string values on `key = value` lines.
// Headers, comments, quoted strings, arrays, tables, booleans and numbers are
// left alone.
func QuoteBareValues(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !isBare(value) {
			continue
		}
		lines[i] = fmt.Sprintf("%s = %q", key, value)
	}
	return strings.Join(lines, "\n")
}

func isBare(value string) bool {
	if value == "" || value == "true" || value == "false" {
		return false
	}
	if strings.ContainsAny(value[:1], `"'[{`) {
		return false
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return false
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return false
	}
	return true
}
