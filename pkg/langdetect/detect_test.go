package langdetect_test

import (
	"testing"

	"github.com/yaklabco/goswon/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang sh", "#!/bin/sh\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"shebang wins over patterns", "#!/bin/bash\ndef foo():\n    pass", "bash"},
		{"go", "package main\n\nfunc main() {}\n", "go"},
		{"python", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"javascript", "const x = () => 42;\nconsole.log(x());", "javascript"},
		{"json", `{"key": "value", "number": 123}`, "json"},
		{"yaml", "key: value\nother: 123\nlist:\n  - a\n  - b", "yaml"},
		{"rust", "fn main() {\n    println!(\"hi\");\n}", "rust"},
		{"sql", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"html", "<!DOCTYPE html>\n<html><body></body></html>", "html"},
		{"dockerfile", "FROM golang:1.23\nWORKDIR /app\nCOPY . .\nRUN go build", "dockerfile"},
		{"swon", "@server\nport = 8080\nhost = \"localhost\"\n", "swon"},
		{"toml", "[server]\nport = 8080\n", "toml"},
		{"plain text", "just some words without structure", langdetect.Unknown},
		{"blank", " \n\t\n", langdetect.Unknown},
		{"empty", "", langdetect.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(tt.content)); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"py", "python"},
		{"python3", "python"},
		{"Python", "python"},
		{"golang", "go"},
		{"sh", "bash"},
		{"javascript", "javascript"},
		{"SWON", "swon"},
		{" go ", "go"},
		{"FrobScript", "frobscript"},
		{"", langdetect.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Normalize(tt.tag); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}
