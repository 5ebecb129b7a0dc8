// Package config holds the settings shared by the pedersen command and
// the hashing packages it drives.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/NethermindEth/starknet-pedersen/core/crypto"
	"github.com/NethermindEth/starknet-pedersen/pkg/log"
	"github.com/NethermindEth/starknet-pedersen/validator"
	validatorpkg "github.com/go-playground/validator/v10"
)

const (
	DefaultLogLevel  = log.INFO
	DefaultCacheSize = crypto.DefaultCacheSize
)

var (
	ErrInvalidWorkers   = errors.New("workers must be positive")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)

// DefaultWorkers is the number of goroutines used by batch hashing when
// nothing else is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Config is the top-level configuration. Keys match the command line
// flags so a yaml file and the flags can be bound by the same names.
type Config struct {
	LogLevel  log.LogLevel `yaml:"log-level" mapstructure:"log-level"`
	Workers   int          `yaml:"workers" mapstructure:"workers" validate:"min=1"`
	CacheSize int          `yaml:"cache-size" mapstructure:"cache-size" validate:"min=1"`
}

func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Workers:   DefaultWorkers(),
		CacheSize: DefaultCacheSize,
	}
}

// Validate checks the struct tags of c. Failures on a known field are
// reported through that field's sentinel error.
func (c *Config) Validate() error {
	err := validator.Validator().Struct(c)
	var fieldErrs validatorpkg.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Workers":
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidWorkers, fe.Value()))
		case "CacheSize":
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidCacheSize, fe.Value()))
		default:
			errs = append(errs, fe)
		}
	}
	return errors.Join(errs...)
}
