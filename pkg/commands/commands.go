package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/genai"
	"tableflip.dev/planner/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: base.Wrap80("Content planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addUpcoming(topLevel)
	addCalendar(topLevel)
	addCaption(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newService wires the in-memory store, config, and caption generator the
// way every subcommand consumes them.
func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	svc := app.New(store.NewMemory(), cfg)
	svc.Generator = genai.NewClient(cfg.GenAIModel, cfg.GenAIAPIKey)
	return svc, nil
}
