package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

type loadOptions struct {
	now       func() time.Time
	lookupEnv func(string) (string, bool)
	dotenv    bool
}

// Option customizes loading.
type Option func(*loadOptions)

// WithClock sets the clock used for {year} expansion.
func WithClock(now func() time.Time) Option {
	return func(o *loadOptions) { o.now = now }
}

// WithLookupEnv replaces os.LookupEnv for ${VAR} expansion.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *loadOptions) { o.lookupEnv = lookup }
}

// WithoutDotenv disables reading .env files next to the configuration.
func WithoutDotenv() Option {
	return func(o *loadOptions) { o.dotenv = false }
}

// Load reads the configuration file at path.
func Load(path string, opts ...Option) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "resolve config path").
			WithContext("path", path).Build()
	}
	cfg, err := LoadFS(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), opts...)
	if err != nil {
		return nil, err
	}
	cfg.source = abs
	return cfg, nil
}

// LoadFS reads the configuration file name from fsys, expands environment
// references, decodes it strictly and applies defaults.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Config, error) {
	o := loadOptions{now: time.Now, lookupEnv: os.LookupEnv, dotenv: true}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := fs.ReadFile(fsys, name)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFound(fmt.Sprintf("configuration file not found: %s", name)).
			WithContext("path", name).Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read config file").
			WithContext("path", name).Build()
	}

	dotenv := map[string]string{}
	if o.dotenv {
		if dotenv, err = loadDotenv(fsys, name); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "load dotenv").
				WithContext("path", name).Build()
		}
	}

	cfg, err := Parse([]byte(expandEnv(string(data), o.lookupEnv, dotenv)))
	if err != nil {
		return nil, err
	}
	cfg.source = name

	if err := NewDefaultApplier(o.now).ApplyDefaults(cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "apply defaults").Build()
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a configuration document without expanding environment
// references or applying defaults. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.ConfigFailure("configuration file is empty").Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "decode config").Fatal().UserAction().Build()
	}
	return &cfg, nil
}
