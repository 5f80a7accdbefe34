package engine

import (
	"github.com/AASoftIR/wasm-editor/internal/config"
	"github.com/AASoftIR/wasm-editor/internal/logging"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial document content.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithConfig applies growth-policy and search-register tunables loaded from
// a Config, in place of the package defaults.
func WithConfig(cfg config.Config) Option {
	return func(e *Editor) {
		e.cfg = cfg
	}
}

// WithLogger attaches a logger used for mode-transition and edit
// diagnostics. The document's contents are never logged.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		e.log = l
	}
}
