package flags

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/devantler-tech/templ-gen/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// Flag names.
const (
	ServiceFlagName   = "service"
	NamespaceFlagName = "namespace"
	DomainFlagName    = "domain"
	OutputDirFlagName = "output-dir"
	ConfigFlagName    = "config"
	TimingFlagName    = "timing"
	VerboseFlagName   = "verbose"
)

// ErrNilCommand is returned when a helper is given no command.
var ErrNilCommand = errors.New("command cannot be nil")

// IsTimingEnabled reports whether --timing is set on cmd or inherited from a parent.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	return lookupBool(cmd, TimingFlagName)
}

// IsVerbose reports whether --verbose is set. A missing flag counts as false.
func IsVerbose(cmd *cobra.Command) bool {
	verbose, err := lookupBool(cmd, VerboseFlagName)

	return err == nil && verbose
}

// MaybeTimer returns tmr when --timing is enabled, and nil otherwise.
// The result can be passed straight to notify so timing only shows when requested.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if cmd == nil || tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}

// AddIgnoredGenerateFlags registers --namespace and --domain on commands that accept them
// for a uniform command line but do not use them.
func AddIgnoredGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(NamespaceFlagName, "n", "", "Kubernetes namespace (ignored, used by generate)")
	cmd.Flags().StringP(DomainFlagName, "d", "", "Domain (ignored, used by generate)")
}

func lookupBool(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(name)
	}

	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(name)
	}

	if flag == nil {
		return false, fmt.Errorf("flag %q not found", name)
	}

	enabled, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		return false, fmt.Errorf("flag %q is not a boolean: %w", name, err)
	}

	return enabled, nil
}
