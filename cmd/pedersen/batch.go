package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/NethermindEth/starknet-pedersen/core/crypto"
	"github.com/NethermindEth/starknet-pedersen/core/felt"
	"github.com/NethermindEth/starknet-pedersen/validator"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchFile is the document read by the batch command:
//
//	pairs:
//	  - ["0x1", "0x2"]
//	  - ["3", "4"]
type batchFile struct {
	Pairs [][2]string `yaml:"pairs" validate:"required,dive,dive,required"`
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Hash every pair listed in a yaml file.",
		Long:  "Hash every pair listed in a yaml file and print one result per line, in input order.",
		Args:  cobra.ExactArgs(1),
		RunE: withLogSync(func(cmd *cobra.Command, args []string) error {
			pairs, err := readBatchFile(cmd.Context(), args[0], LoadedConfig.Workers)
			if err != nil {
				return err
			}

			start := time.Now()
			hashes := crypto.PedersenBatch(pairs, LoadedConfig.Workers)
			logger.Infow("Hashed batch", "pairs", len(pairs), "workers", LoadedConfig.Workers,
				"elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			for _, h := range hashes {
				if _, err := fmt.Fprintln(out, h); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func readBatchFile(ctx context.Context, path string, workers int) ([][2]*felt.Felt, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file batchFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err = validator.Validator().Struct(&file); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	logger.Debugw("Read batch file", "path", path, "pairs", len(file.Pairs))

	pairs := make([][2]*felt.Felt, len(file.Pairs))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i, pair := range file.Pairs {
		p.Go(func(context.Context) error {
			for j, s := range pair {
				elem, err := parseFelt(s)
				if err != nil {
					return errors.Wrapf(err, "pair %d", i)
				}
				pairs[i][j] = elem
			}
			return nil
		})
	}
	if err = p.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}
