package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type Backend string

const (
	ArrayBackend  Backend = "array"
	LinkedBackend Backend = "linked"
)

type Kind string

const (
	IntKind    Kind = "int"
	StringKind Kind = "string"
)

const envPrefix = "QUEUECTL_"

type Config struct {
	Backend  Backend
	Priority bool
	Kind     Kind
	LogLevel logrus.Level

	backend  string
	kind     string
	logLevel string
}

// New returns a Config whose defaults come from QUEUECTL_* environment
// variables, falling back to an int array queue logging at info.
func New() *Config {
	priority, _ := strconv.ParseBool(os.Getenv(envPrefix + "PRIORITY"))
	return &Config{
		Priority: priority,
		backend:  getenv("BACKEND", string(ArrayBackend)),
		kind:     getenv("KIND", string(IntKind)),
		logLevel: getenv("LOG_LEVEL", logrus.InfoLevel.String()),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

// BindFlags registers the configuration flags on fs. Flag values override
// the environment defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.backend, "backend", "b", c.backend, "queue storage: array or linked")
	fs.BoolVarP(&c.Priority, "priority", "p", c.Priority, "keep the queue in priority order")
	fs.StringVarP(&c.kind, "kind", "k", c.kind, "element type: int or string")
	fs.StringVar(&c.logLevel, "log-level", c.logLevel, "logrus level (debug, info, warn, error)")
}

// Load resolves the raw flag values into typed fields.
func (c *Config) Load() error {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return errors.Wrap(err, "config : invalid log level")
	}
	c.LogLevel = level
	c.Backend = Backend(c.backend)
	c.Kind = Kind(c.kind)
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Backend {
	case ArrayBackend, LinkedBackend:
	default:
		return errors.Errorf("config : unknown backend %q", c.Backend)
	}
	switch c.Kind {
	case IntKind, StringKind:
	default:
		return errors.Errorf("config : unknown element kind %q", c.Kind)
	}
	return nil
}
