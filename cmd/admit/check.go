package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/admit/pkg/config"
	"github.com/arthur-debert/admit/pkg/errors"
	"github.com/arthur-debert/admit/pkg/logging"
	"github.com/arthur-debert/admit/pkg/matchers"
)

func newCheckCmd() *cobra.Command {
	var (
		whitelist  []string
		blacklist  []string
		policyName string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "check VALUE...",
		Short: "Check values against whitelist/blacklist patterns",
		Long: `Check each VALUE against whitelist and blacklist pattern sets and
print an ALLOW or DENY verdict per value. A value matching any blacklist
pattern is denied; with a whitelist present, unmatched values are denied
too. Patterns come from --whitelist/--blacklist flags, from a named
--policy in the config file, or both combined.

The exit status is 0 when every value is allowed and 1 otherwise.`,
		Example: `  admit check web01 --whitelist 'web*' --blacklist 'web-test*'
  admit check db04 --whitelist 'db0[1-5]'
  admit check minion7 --policy minions`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			wl, bl := whitelist, blacklist
			if policyName != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				pol := cfg.Policy(policyName)
				if pol == nil {
					return errors.Newf(errors.ErrPolicyNotFound, "policy %q is not defined", policyName)
				}
				wl = append(append([]string{}, pol.Whitelist...), wl...)
				bl = append(append([]string{}, pol.Blacklist...), bl...)
			}

			denied := false
			for _, value := range args {
				admitted := matchers.CheckWhitelistBlacklist(value, wl, bl)
				logger.Debug().
					Str("value", value).
					Bool("admitted", admitted).
					Msg("checked value")
				if !admitted {
					denied = true
				}
				if !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), verdictLine(value, admitted))
				}
			}

			if denied {
				return errors.New(errors.ErrDenied, "one or more values were denied")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&whitelist, "whitelist", "w", nil, "whitelist pattern (repeatable)")
	cmd.Flags().StringArrayVarP(&blacklist, "blacklist", "b", nil, "blacklist pattern (repeatable)")
	cmd.Flags().StringVarP(&policyName, "policy", "p", "", "named policy from the config file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress verdict output, report via exit status only")

	return cmd
}
