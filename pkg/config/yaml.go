package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// YAMLIndent is the indentation of generated YAML.
const YAMLIndent = 2

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration after a comment header.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return body, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

// FromYAML parses a configuration. Settings absent from data stay unset.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Ignore = slices.Clone(c.Ignore)
	clone.Unformat = UnformatConfig{
		Seed:              clonePtr(c.Unformat.Seed),
		WeirdSpace:        clonePtr(c.Unformat.WeirdSpace),
		EmptyLine:         clonePtr(c.Unformat.EmptyLine),
		LineRemoval:       clonePtr(c.Unformat.LineRemoval),
		WhitespaceRemoval: clonePtr(c.Unformat.WhitespaceRemoval),
	}
	return &clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
