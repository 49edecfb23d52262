package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// SettingInfo documents one configuration key. An empty Default means the
// key is unset by default.
type SettingInfo struct {
	Key         string
	Description string
	Default     string
}

// Settings returns the documented configuration keys in template order.
func Settings() []SettingInfo {
	return []SettingInfo{
		{"format.indent_width", "Spaces per nested section block level.", fmt.Sprint(DefaultIndentWidth)},
		{"unformat.seed", "Seed of the unformatter's pseudo random generator. Equal seeds give equal output; unset draws a random seed per run.", ""},
		{"unformat.weird_space", "Chance that an eligible gap receives unusual spacing.", fmt.Sprint(DefaultProbability)},
		{"unformat.empty_line", "Chance that an eligible gap receives extra blank lines.", fmt.Sprint(DefaultProbability)},
		{"unformat.line_removal", "Chance that line breaks in an eligible gap are removed.", fmt.Sprint(DefaultProbability)},
		{"unformat.whitespace_removal", "Chance that spaces in an eligible gap are removed.", fmt.Sprint(DefaultProbability)},
		{"color", "Styled terminal output: auto, always, or never.", string(ColorAuto)},
		{"log_level", "Log verbosity: debug, info, warn, or error.", "info"},
		{"value_format", "Default encoding of `swon value`: json or yaml.", string(ValueJSON)},
	}
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var content []byte
	if opts.Full {
		content = generateFullTemplate()
	} else {
		content = generateMinimalTemplate()
	}

	if opts.Format == "json" {
		return templateToJSON(content)
	}
	return content, nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

format:
  indent_width: 2

# unformat:
#   seed: 0
#   weird_space: 0.2

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "testdata/**"
`)
	return buf.Bytes()
}

func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n#\n# This template lists every setting with its default value.\n")

	section := ""
	for _, s := range Settings() {
		parent, key, nested := strings.Cut(s.Key, ".")
		indent := ""
		if nested {
			indent = "  "
			if parent != section {
				fmt.Fprintf(&buf, "\n%s:\n", parent)
				section = parent
			}
		} else {
			key = parent
			section = ""
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s# %s\n", indent, wrapComment(s.Description, commentWrapWidth, indent))
		if s.Default == "" {
			fmt.Fprintf(&buf, "%s# %s:\n", indent, key)
			continue
		}
		fmt.Fprintf(&buf, "%s%s: %s\n", indent, key, s.Default)
	}

	buf.WriteString(`
# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - ".git/**"
`)
	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int, indent string) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent+"# ")
}

// templateToJSON converts a YAML template to JSON, dropping its comments.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(yamlContent, &doc); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# swon configuration
# See: https://github.com/yaklabco/goswon`
}
