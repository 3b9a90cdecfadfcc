package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables referenced as {{.VAR_NAME}} in
// raw YAML. Template syntax is used instead of $VAR so that literal dollar
// signs survive untouched — keyword patterns, passwords, and shell snippets
// in config values regularly contain them.
//
// Missing variables expand to the empty string; validation is responsible for
// rejecting required fields that end up empty. Malformed template syntax
// passes the bytes through unchanged so the YAML parser can produce the
// clearer error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			env[kv[:idx]] = kv[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
