package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/admit/pkg/config"
	"github.com/arthur-debert/admit/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate a starter configuration",
		Long: `Print a starter admit.toml with example policies demonstrating each
pattern mode. With --write the file is written to the working directory
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(config.Starter())
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
			}

			if write {
				if _, err := os.Stat("admit.toml"); err == nil {
					return errors.New(errors.ErrInvalidInput, "admit.toml already exists, refusing to overwrite")
				}
				if err := os.WriteFile("admit.toml", data, 0644); err != nil {
					return errors.Wrap(err, errors.ErrFileWrite, "failed to write admit.toml")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote admit.toml")
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to admit.toml instead of stdout")

	return cmd
}
