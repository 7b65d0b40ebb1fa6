package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/admit/pkg/config"
	"github.com/arthur-debert/admit/pkg/errors"
	"github.com/arthur-debert/admit/pkg/matchers"
)

func newFilterCmd() *cobra.Command {
	var (
		includePat string
		excludePat string
		policyName string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter stdin lines through include/exclude patterns",
		Long: `Read lines from stdin and write the ones passing the include/exclude
filter to stdout. Patterns are full-string globs by default; prefix a
pattern with E@ to switch to unanchored regex substring matching. With
no patterns every line passes.`,
		Example: `  find /etc -type f | admit filter --include '/etc/*' --exclude 'E@secret'
  cat hosts.txt | admit filter --exclude '*.internal'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inc, exc := includePat, excludePat
			if policyName != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				pol := cfg.Policy(policyName)
				if pol == nil {
					return errors.Newf(errors.ErrPolicyNotFound, "policy %q is not defined", policyName)
				}
				if inc == "" {
					inc = pol.Include
				}
				if exc == "" {
					exc = pol.Exclude
				}
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()
				if matchers.CheckIncludeExclude(line, inc, exc) {
					fmt.Fprintln(out, line)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&includePat, "include", "i", "", "pattern a line must match (glob, or E@regex)")
	cmd.Flags().StringVarP(&excludePat, "exclude", "e", "", "pattern that rejects a line (glob, or E@regex)")
	cmd.Flags().StringVarP(&policyName, "policy", "p", "", "named policy from the config file")

	return cmd
}
