package main

import (
	"github.com/spf13/cobra"

	"masterboxer.com/project-micro-social/config"
	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/services"
)

// cli holds what every subcommand needs once the root pre-run has opened the store.
type cli struct {
	dataDir string
	verbose bool

	cfg     config.Config
	social  *services.Social
	closeFn func() error
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "socialctl [command] [flags]",
		Short:         "socialctl: a tiny social network kept in plain files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeFn == nil {
				return nil
			}
			return c.closeFn()
		},
	}

	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory holding user documents (overrides SOCIAL_DATA_DIR)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log store activity to stderr")

	root.AddCommand(
		c.signupCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.postCmd(),
		c.followCmd(),
		c.likeCmd(),
		c.dislikeCmd(),
		c.feedCmd(),
		c.timelineCmd(),
		c.usersCmd(),
	)
	return root
}

func (c *cli) open() error {
	c.cfg = config.Load()
	if c.dataDir != "" {
		c.cfg.DataDir = c.dataDir
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logging.Init("socialctl", level)

	social, closeFn, err := services.Open(c.cfg)
	if err != nil {
		return err
	}
	c.social = social
	c.closeFn = closeFn
	return nil
}
