package service

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/app/store/sqlstore"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "group chat service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	serve(app)

	return nil
}

// NewInstallCommand creates the sqlite schema and exits. The service command
// installs the schema on boot too, this exists for provisioning the data file
// ahead of time.
func NewInstallCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "create database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInstall(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func RunInstall(opts *Options) error {
	cfg := core.MustLoadBaseConfig(opts.ConfigPath)
	provider := sqlstore.MustSetup(cfg.SQLite)
	if err := provider.Install(); err != nil {
		return err
	}
	fmt.Println("schema installed")
	return nil
}
