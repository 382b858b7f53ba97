package helpers

import (
	"fmt"
	"io"
	"slices"

	"code.cloudfoundry.org/lager/v3"
)

var logLevels = map[string]lager.LogLevel{
	"":      lager.INFO,
	"debug": lager.DEBUG,
	"info":  lager.INFO,
	"error": lager.ERROR,
	"fatal": lager.FATAL,
}

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
	// RedactKeys extends DefaultRedactedKeys.
	RedactKeys []string `yaml:"redact_keys" json:"redact_keys"`
}

func (c *LoggingConfig) LogLevel() (lager.LogLevel, error) {
	level, ok := logLevels[c.Level]
	if !ok {
		return -1, fmt.Errorf("%w: logging.level %q is not one of debug, info, error or fatal", ErrConfiguration, c.Level)
	}
	return level, nil
}

func (c *LoggingConfig) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := NewRedacter(c.redactKeys(), nil); err != nil {
		return fmt.Errorf("%w: logging.redact_keys: %w", ErrConfiguration, err)
	}
	return nil
}

func (c *LoggingConfig) redactKeys() []string {
	return slices.Concat(DefaultRedactedKeys, c.RedactKeys)
}

// NewLoggerFromConfig builds a logger with a single redacting sink on out,
// JSON or plain text as configured.
func NewLoggerFromConfig(conf *LoggingConfig, name string, out io.Writer) (lager.Logger, error) {
	level, err := conf.LogLevel()
	if err != nil {
		return nil, err
	}
	redacter, err := NewRedacter(conf.redactKeys(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating log redacter: %w", err)
	}

	var sink lager.Sink
	if conf.PlainTextSink {
		sink = NewTextSink(out, level, redacter)
	} else {
		sink = NewRedactingSink(out, level, redacter)
	}

	logger := lager.NewLogger(name)
	logger.RegisterSink(sink)
	return logger, nil
}
