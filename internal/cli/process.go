package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"componentgate/internal/app"
)

type processOptions struct {
	Manifest                 string
	Output                   string
	Package                  string
	MaxRounds                int
	AheadOfTimeSubcomponents bool
	StateFile                string
}

func newProcessCommand() *cobra.Command {
	opts := processOptions{}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Validate declarations and generate code for clean components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd.Context(), cmd, opts)
		},
	}
	bindManifestFlags(cmd, &opts.Manifest, &opts.Package, &opts.MaxRounds, &opts.AheadOfTimeSubcomponents)
	cmd.Flags().StringVar(&opts.Output, "output", "gen", "Output directory for generated files")
	cmd.Flags().StringVar(&opts.StateFile, "state-file", "", "Run state file (default <output>/componentgate.state)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("state_file", cmd.Flags().Lookup("state-file"))
	return cmd
}

func runProcess(ctx context.Context, cmd *cobra.Command, opts processOptions) error {
	service := newAppService()
	result, err := service.Process(ctx, app.ProcessRequest{
		ManifestPath:             resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		OutputDir:                resolveString(cmd, opts.Output, "output", "output"),
		Package:                  resolveString(cmd, opts.Package, "package", "package"),
		MaxRounds:                resolveInt(cmd, opts.MaxRounds, "max_rounds", "max-rounds"),
		AheadOfTimeSubcomponents: resolveBool(cmd, opts.AheadOfTimeSubcomponents, "ahead_of_time_subcomponents", "ahead-of-time-subcomponents"),
		StateFile:                resolveString(cmd, opts.StateFile, "state_file", "state-file"),
	})
	for _, artifact := range result.Generated {
		fmt.Printf("generated: %s (%s)\n", artifact.TypeName, filepath.Base(artifact.Path))
	}
	if err != nil {
		return err
	}
	fmt.Printf("processed %s in %d round(s): %d generated, %d warning(s)\n",
		result.Package, result.Rounds, len(result.Generated), result.Warnings)
	return nil
}

func bindManifestFlags(cmd *cobra.Command, manifest *string, pkg *string, maxRounds *int, aheadOfTime *bool) {
	cmd.Flags().StringVar(manifest, "manifest", "", "Declaration manifest file or directory of *.di.yaml files")
	cmd.Flags().StringVar(pkg, "package", "", "Override the generated package name")
	cmd.Flags().IntVar(maxRounds, "max-rounds", app.DefaultMaxRounds, "Maximum number of processing rounds")
	cmd.Flags().BoolVar(aheadOfTime, "ahead-of-time-subcomponents", false, "Also generate every clean subcomponent on its own")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("max_rounds", cmd.Flags().Lookup("max-rounds"))
	_ = viper.BindPFlag("ahead_of_time_subcomponents", cmd.Flags().Lookup("ahead-of-time-subcomponents"))
}
