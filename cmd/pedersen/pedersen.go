package main

import (
	"fmt"

	"github.com/NethermindEth/starknet-pedersen/core/crypto"
	"github.com/NethermindEth/starknet-pedersen/core/felt"
	"github.com/NethermindEth/starknet-pedersen/internal/config"
	"github.com/NethermindEth/starknet-pedersen/pkg/crypto/pedersen"
	"github.com/NethermindEth/starknet-pedersen/pkg/log"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF    = "config"
	logLevelF  = "log-level"
	workersF   = "workers"
	cacheSizeF = "cache-size"

	defaultConfig = ""

	configFlagUsage = "The yaml configuration file."
	logLevelUsage   = "Options: debug, info, warn, error."
	workersUsage    = "Maximum number of goroutines hashing a batch file."
	cacheSizeUsage  = "Number of Pedersen results kept in memory."
)

// LoadedConfig is the configuration resolved by the last command run.
var LoadedConfig *config.Config

var (
	logger    log.Logger = log.NewNopLogger()
	flushLogs            = func() error { return nil }
	newLogger            = log.NewProductionLogger
)

func NewCmd() *cobra.Command {
	var cfgFile string

	pedersenCmd := &cobra.Command{
		Use:           "pedersen",
		Short:         "Starknet Pedersen hash over the STARK curve.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	logLevel := config.DefaultLogLevel
	pedersenCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	pedersenCmd.PersistentFlags().Var(&logLevel, logLevelF, logLevelUsage)
	pedersenCmd.PersistentFlags().Int(workersF, config.DefaultWorkers(), workersUsage)
	pedersenCmd.PersistentFlags().Int(cacheSizeF, config.DefaultCacheSize, cacheSizeUsage)

	pedersenCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, cfgFile)
		if err != nil {
			return err
		}

		if _, err = crypto.ResizeCache(cfg.CacheSize); err != nil {
			return err
		}

		prodLogger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = prodLogger.Named("pedersen")
		flushLogs = prodLogger.Sync
		logger.Debugw("Loaded configuration", "log-level", cfg.LogLevel, "workers", cfg.Workers,
			"cache-size", cfg.CacheSize)

		LoadedConfig = cfg
		return nil
	}

	pedersenCmd.AddCommand(newHashCmd(), newArrayCmd(), newBatchCmd())
	return pedersenCmd
}

// loadConfig layers, from lowest to highest precedence, the flag defaults,
// the yaml file named by --config and the flags set on the command line.
func loadConfig(cmd *cobra.Command, cfgFile string) (*config.Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(config.Config)
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash X Y",
		Short: "Hash two field elements.",
		Long:  "Hash two field elements given in decimal or 0x-prefixed hexadecimal.",
		Args:  cobra.ExactArgs(2),
		RunE: withLogSync(func(cmd *cobra.Command, args []string) error {
			x, err := parseFelt(args[0])
			if err != nil {
				return err
			}
			y, err := parseFelt(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), crypto.Pedersen(x, y))
			return err
		}),
	}
}

func newArrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array [ELEMENT...]",
		Short: "Hash a sequence of field elements.",
		Long: "Fold the elements with the Pedersen hash starting from zero and " +
			"finish by hashing in the number of elements.",
		RunE: withLogSync(func(cmd *cobra.Command, args []string) error {
			elems := make([]*felt.Felt, len(args))
			for i, arg := range args {
				elem, err := parseFelt(arg)
				if err != nil {
					return errors.Wrapf(err, "element %d", i)
				}
				elems[i] = elem
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), crypto.PedersenArray(elems...))
			return err
		}),
	}
}

// withLogSync flushes the logger once run returns, whether or not it
// failed.
func withLogSync(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			// stderr cannot be synced on every platform.
			_ = flushLogs()
		}()
		return run(cmd, args)
	}
}

func parseFelt(s string) (*felt.Felt, error) {
	v, err := pedersen.ParseFieldElement(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", s)
	}
	return new(felt.Felt).SetBigInt(v)
}
