package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
)

// dotenvFiles are read from the configuration file's directory. Later files
// override earlier ones; the process environment overrides both.
var dotenvFiles = []string{".env", ".env.local"}

// loadDotenv parses the dotenv files next to name in fsys. Missing files
// are skipped.
func loadDotenv(fsys fs.FS, name string) (map[string]string, error) {
	vars := map[string]string{}
	dir := path.Dir(name)
	for _, file := range dotenvFiles {
		p := path.Join(dir, file)
		f, err := fsys.Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		parsed, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		for k, v := range parsed {
			vars[k] = v
		}
	}
	return vars, nil
}

// expandEnv replaces ${VAR}, ${VAR:-default} and $VAR references in data.
// Unset variables without a default expand to the empty string.
func expandEnv(data string, lookup func(string) (string, bool), dotenv map[string]string) string {
	return os.Expand(data, func(key string) string {
		key, fallback, hasFallback := strings.Cut(key, ":-")
		if v, ok := lookup(key); ok && (v != "" || !hasFallback) {
			return v
		}
		if v, ok := dotenv[key]; ok && (v != "" || !hasFallback) {
			return v
		}
		return fallback
	})
}
