package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "boardgraph turns chess positions into relation graphs",
		Long: `boardgraph extracts the pieces of a chess position and relates them as a
typed graph: attacks and protections, adjacency, and king safety boxes. It can
also assemble arbitrary edge lists into an acyclic graph and render it.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(os.LookupEnv); err != nil {
				return err
			}
			level := c.Config.LogLevel()
			if c.verbose {
				level = LogDebug
				registerLogHooks(c.Logger)
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&c.cacheBackend, "cache", "", "cache backend: none, file, redis or mongo")

	root.AddCommand(c.graphCommand())
	root.AddCommand(c.kingboxCommand())
	root.AddCommand(c.dagCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the CLI with args taken from os.Args.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
