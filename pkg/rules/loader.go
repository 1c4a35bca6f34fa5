package rules

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a rule file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

type tomlFile struct {
	Rules []Rule `toml:"rules"`
}

// LoadFiles reads every file in order and concatenates their rules. Any
// failure aborts the load: a partial rule set would silently change which
// rule wins.
func LoadFiles(files []string) ([]Rule, error) {
	logger := logging.GetLogger("rules.loader")

	var all []Rule
	for _, f := range files {
		loaded, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("file", f).
			Int("rules", len(loaded)).
			Msg("Loaded rule file")
		all = append(all, loaded...)
	}

	logger.Info().
		Int("files", len(files)).
		Int("rules", len(all)).
		Msg("Loaded rules")
	return all, nil
}

// LoadFile reads a single rule file
func LoadFile(path string) ([]Rule, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, errors.Newf(errors.ErrRulesLoad, "unsupported rule file type %q", filepath.Ext(path)).
			WithDetail(errors.DetailSource, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to open rule file %s", path).
			WithDetail(errors.DetailSource, path)
	}
	defer f.Close()

	return Decode(f, format, path)
}

// Decode parses rules from r. source is recorded on every rule.
func Decode(r io.Reader, format Format, source string) ([]Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read %s", source).
			WithDetail(errors.DetailSource, source)
	}

	var rules []Rule
	switch format {
	case FormatYAML:
		rules, err = decodeYAML(data)
	case FormatTOML:
		var doc tomlFile
		err = toml.Unmarshal(data, &doc)
		rules = doc.Rules
	default:
		return nil, errors.Newf(errors.ErrRulesLoad, "unknown rule format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to parse %s", source).
			WithDetail(errors.DetailSource, source)
	}

	for i := range rules {
		rules[i].normalize()
		rules[i].Source = source
		rules[i].Position = i
	}
	return rules, nil
}

// decodeYAML accepts a top-level list of rules or a mapping with a rules key
func decodeYAML(data []byte) ([]Rule, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	var rules []Rule
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&rules); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var wrapped struct {
			Rules []Rule `yaml:"rules"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, err
		}
		rules = wrapped.Rules
	default:
		return nil, errors.Newf(errors.ErrRulesLoad, "line %d: expected a list of rules", doc.Line)
	}
	return rules, nil
}
