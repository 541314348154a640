package cli

import "github.com/pkg/errors"

// ConfigError reports one invalid or inconsistent flag (§7's
// configuration-error taxonomy). Flag names the offending flag so the
// caller can print "flag deck: ..." without string-matching the
// message.
type ConfigError struct {
	Flag string
	err  error
}

func newConfigError(flag, msg string) *ConfigError {
	return &ConfigError{Flag: flag, err: errors.Errorf("flag %s: %s", flag, msg)}
}

func wrapConfigError(flag string, cause error) *ConfigError {
	return &ConfigError{Flag: flag, err: errors.Wrapf(cause, "flag %s", flag)}
}

func (e *ConfigError) Error() string { return e.err.Error() }

func (e *ConfigError) Unwrap() error { return e.err }
