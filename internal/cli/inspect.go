package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"componentgate/internal/app"
)

type inspectOptions struct {
	StateFile string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the state of the last process run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.StateFile, "state-file", "", "Run state file (default gen/"+app.StateFileName+")")
	_ = viper.BindPFlag("state_file", cmd.Flags().Lookup("state-file"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	stateFile := resolveString(cmd, opts.StateFile, "state_file", "state-file")
	if stateFile == "" {
		stateFile = filepath.Join("gen", app.StateFileName)
	}
	result, err := service.Inspect(app.InspectRequest{StateFile: stateFile})
	if err != nil {
		return err
	}

	fmt.Printf("run %s at %s (package %s)\n", result.RunID, result.CreatedAt, result.Package)
	fmt.Printf("rounds: %d\n", len(result.Rounds))
	for _, round := range result.Rounds {
		fmt.Printf("- round %d: %d submitted, generated [%s], dirty [%s], deferred [%s]\n",
			round.Number,
			len(round.Submitted),
			strings.Join(round.Generated, ", "),
			strings.Join(round.Dirty, ", "),
			strings.Join(round.Deferred, ", "),
		)
	}
	fmt.Printf("files: %d\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("- %s\n", file)
	}
	if len(result.Unresolved) > 0 {
		fmt.Printf("unresolved: %s\n", strings.Join(result.Unresolved, ", "))
	}
	fmt.Printf("diagnostics: %d error(s), %d warning(s)\n", result.Errors, result.Warnings)
	for _, diagnostic := range result.Diagnostics {
		fmt.Printf("- [%s] %s\n", diagnostic.Severity, diagnostic.Message)
	}
	return nil
}
