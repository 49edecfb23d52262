// Package langdetect guesses the language of SWON code block bodies that
// carry no language tag, and canonicalises the tags that are present.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined.
const Unknown = "text"

const (
	langBash       = "bash"
	langDockerfile = "dockerfile"
	langGo         = "go"
	langHTML       = "html"
	langJavaScript = "javascript"
	langJSON       = "json"
	langPython     = "python"
	langRust       = "rust"
	langSQL        = "sql"
	langSWON       = "swon"
	langTOML       = "toml"
	langYAML       = "yaml"
)

// classifierCandidates bounds the go-enry classifier to languages that
// commonly appear in configuration documents.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// sample is a code body with the derived forms the rules inspect.
type sample struct {
	raw     []byte
	trimmed []byte
	text    string
	lines   [][]byte
}

func newSample(content []byte) sample {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimSpace(line)
	}
	return sample{
		raw:     content,
		trimmed: bytes.TrimSpace(content),
		text:    string(content),
		lines:   lines,
	}
}

// rule reports whether a sample is written in lang.
type rule struct {
	lang  string
	match func(s sample) bool
}

// rules are tried in order; earlier rules are more specific.
var rules = []rule{
	{langGo, isGo},
	{langPython, isPython},
	{langHTML, isHTML},
	{langJSON, isJSON},
	{langDockerfile, isDockerfile},
	{langSQL, isSQL},
	{langRust, isRust},
	{langSWON, isSWON},
	{langTOML, isTOML},
	{langJavaScript, isJavaScript},
	{langYAML, isYAML},
}

// Detect returns the language of a code block body, or Unknown.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	s := newSample(content)
	for _, r := range rules {
		if r.match(s) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}
	return Unknown
}

// Normalize maps a code block language tag to its canonical name, so that
// "py", "Python" and "python3" all become "python". Tags that are neither
// a known alias nor an unambiguous file extension are lower-cased.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Unknown
	}
	if strings.EqualFold(tag, langSWON) {
		return langSWON
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByExtension("." + tag); safe && lang != "" {
		return normalize(lang)
	}
	return strings.ToLower(tag)
}

// normalize converts go-enry language names to tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}

func isGo(s sample) bool {
	return bytes.HasPrefix(s.trimmed, []byte("package "))
}

func isPython(s sample) bool {
	if strings.Contains(s.text, "def ") && strings.Contains(s.text, "):") {
		return true
	}
	if strings.Contains(s.text, "import ") && !strings.Contains(s.text, "import (") {
		if strings.Contains(s.text, "from ") || bytes.HasPrefix(s.trimmed, []byte("import ")) {
			return true
		}
	}
	return strings.Contains(s.text, "__name__") || strings.Contains(s.text, "__main__")
}

func isHTML(s sample) bool {
	lower := bytes.ToLower(s.trimmed)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}
	return false
}

func isJSON(s sample) bool {
	return (bytes.HasPrefix(s.trimmed, []byte("{")) || bytes.HasPrefix(s.trimmed, []byte("["))) &&
		bytes.Contains(s.trimmed, []byte(`"`))
}

func isDockerfile(s sample) bool {
	return bytes.HasPrefix(s.trimmed, []byte("FROM ")) ||
		(bytes.Contains(s.raw, []byte("\nFROM ")) && bytes.Contains(s.raw, []byte("\nRUN "))) ||
		(bytes.Contains(s.raw, []byte("WORKDIR ")) && bytes.Contains(s.raw, []byte("COPY ")))
}

func isSQL(s sample) bool {
	upper := strings.ToUpper(string(s.trimmed))
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

func isRust(s sample) bool {
	return strings.Contains(s.text, "fn main()") ||
		strings.Contains(s.text, "println!") ||
		strings.Contains(s.text, "let mut ")
}

// isSWON matches documents with an @section header and a key = value binding.
func isSWON(s sample) bool {
	var section, binding bool
	for _, line := range s.lines {
		switch {
		case len(line) > 1 && line[0] == '@' && isKeyStart(line[1]):
			section = true
		case isAssignment(line):
			binding = true
		}
	}
	return section && binding
}

// isTOML matches documents with a [table] header and a key = value pair.
func isTOML(s sample) bool {
	var table, pair bool
	for _, line := range s.lines {
		switch {
		case len(line) > 2 && line[0] == '[' && line[len(line)-1] == ']':
			table = true
		case isAssignment(line):
			pair = true
		}
	}
	return table && pair
}

func isJavaScript(s sample) bool {
	return strings.Contains(s.text, "=>") ||
		strings.Contains(s.text, "const ") ||
		strings.Contains(s.text, "let ") ||
		strings.Contains(s.text, "console.log")
}

// isYAML counts key: value lines and list items.
func isYAML(s sample) bool {
	count := 0
	for _, line := range s.lines {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func isAssignment(line []byte) bool {
	key, _, ok := bytes.Cut(line, []byte(" = "))
	return ok && len(key) > 0 && isKeyStart(key[0])
}

func isKeyStart(c byte) bool {
	return c == '_' || c == '$' || c == '"' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
