// Package config loads tally's CUE configuration file.
//
// A config file is a CUE struct checked against the embedded #Config
// schema:
//
//	angle_mode: "rad"
//	log_level:  "debug"
//	tape:       "~/.tally/tape.db"
//	keys: {
//		"x":         "multiply"
//		"Backspace": "clear"
//	}
//
// Every field is optional; missing fields take the schema defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/spf13/afero"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/keymap"
)

//go:embed schema.cue
var schemaSrc string

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "tally.cue"

// Error codes for LoadError.
const (
	ErrCodeRead     = "C001" // file unreadable
	ErrCodeCompile  = "C002" // CUE syntax error
	ErrCodeSchema   = "C003" // value does not satisfy #Config
	ErrCodeField    = "C004" // field has an unusable value
	ErrCodeBindings = "C005" // key binding targets an unknown token
)

// LoadError describes why a config file was rejected.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Config is the resolved configuration.
type Config struct {
	AngleMode calc.AngleMode
	LogLevel  slog.Level
	Tape      string
	Keys      map[string]string
}

// Default returns the schema defaults.
func Default() *Config {
	cfg, err := parse(nil, "defaults")
	if err != nil {
		// The embedded schema is fixed at build time.
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	return cfg
}

// Load reads path from fs. A missing file at DefaultPath is not an error
// and yields the defaults; any other missing path is.
func Load(fs afero.Fs, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, &LoadError{Code: ErrCodeRead, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	return parse(data, path)
}

// Decoder builds the key decoder for the configured bindings.
func (c *Config) Decoder() (*keymap.Decoder, error) {
	d, err := keymap.New(c.Keys)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBindings, Message: err.Error()}
	}
	return d, nil
}

func parse(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(ErrCodeCompile, err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, formatCUEError(ErrCodeCompile, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(); err != nil {
		return nil, formatCUEError(ErrCodeSchema, err)
	}

	cfg := &Config{Keys: map[string]string{}}

	angle, err := stringField(unified, "angle_mode")
	if err != nil {
		return nil, err
	}
	if cfg.AngleMode, err = calc.ParseAngleMode(angle); err != nil {
		return nil, &LoadError{Code: ErrCodeField, Message: err.Error(), Pos: unified.LookupPath(cue.ParsePath("angle_mode")).Pos()}
	}

	level, err := stringField(unified, "log_level")
	if err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, &LoadError{Code: ErrCodeField, Message: err.Error()}
	}

	if cfg.Tape, err = stringField(unified, "tape"); err != nil {
		return nil, err
	}

	keysVal := unified.LookupPath(cue.ParsePath("keys"))
	if keysVal.Exists() {
		iter, err := keysVal.Fields()
		if err != nil {
			return nil, formatCUEError(ErrCodeSchema, err)
		}
		for iter.Next() {
			tok, err := iter.Value().String()
			if err != nil {
				return nil, formatCUEError(ErrCodeField, err)
			}
			key := iter.Selector().Unquoted()
			if !keymap.IsToken(tok) {
				return nil, &LoadError{
					Code:    ErrCodeBindings,
					Message: fmt.Sprintf("key %q: unknown token %q", key, tok),
					Pos:     iter.Value().Pos(),
				}
			}
			cfg.Keys[key] = tok
		}
	}

	return cfg, nil
}

// stringField resolves a string field, applying its schema default.
func stringField(v cue.Value, name string) (string, error) {
	field := v.LookupPath(cue.ParsePath(name))
	if def, ok := field.Default(); ok {
		field = def
	}
	s, err := field.String()
	if err != nil {
		return "", formatCUEError(ErrCodeField, err)
	}
	return s, nil
}

// formatCUEError converts the first CUE error into a LoadError with its
// position.
func formatCUEError(code string, err error) *LoadError {
	first := err
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		first = errs[0]
	}
	le := &LoadError{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
