package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"componentgate/internal/app"
)

type validateOptions struct {
	Manifest                 string
	Package                  string
	MaxRounds                int
	AheadOfTimeSubcomponents bool
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run every round without writing generated files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	bindManifestFlags(cmd, &opts.Manifest, &opts.Package, &opts.MaxRounds, &opts.AheadOfTimeSubcomponents)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		ManifestPath:             resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Package:                  resolveString(cmd, opts.Package, "package", "package"),
		MaxRounds:                resolveInt(cmd, opts.MaxRounds, "max_rounds", "max-rounds"),
		AheadOfTimeSubcomponents: resolveBool(cmd, opts.AheadOfTimeSubcomponents, "ahead_of_time_subcomponents", "ahead-of-time-subcomponents"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s (%d declarations, %d round(s))\n", result.Package, result.Declarations, result.Rounds)
	if len(result.Generated) > 0 {
		fmt.Printf("would generate: %s\n", strings.Join(result.Generated, ", "))
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
