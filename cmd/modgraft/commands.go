package modgraft

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/modgraft/pkg/config"
	"github.com/arthur-debert/modgraft/pkg/installer"
	"github.com/arthur-debert/modgraft/pkg/link"
	"github.com/arthur-debert/modgraft/pkg/store"
)

// newInstaller wires configuration, store, and link manager for a command
// invocation.
func newInstaller(requirePaths bool) (*installer.Installer, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if requirePaths {
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}

	return installer.New(cfg, link.NewManager(), st), cfg, nil
}

func newInstallCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "install <mod-id>",
		Short: MsgInstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, cfg, err := newInstaller(true)
			if err != nil {
				return err
			}
			if overwrite {
				cfg.Overwrite = true
			}
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			inst.DryRun = dryRun

			if err := inst.Install(args[0]); err != nil {
				return err
			}
			if dryRun {
				fmt.Printf(MsgDryRunInstall, args[0], cfg.LinkPath(args[0]))
				return nil
			}
			fmt.Printf(MsgInstalled, args[0], cfg.LinkPath(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <mod-id>",
		Short: MsgUninstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, _, err := newInstaller(true)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			inst.DryRun = dryRun

			if err := inst.Uninstall(args[0]); err != nil {
				return err
			}
			if dryRun {
				fmt.Printf(MsgDryRunUninstall, args[0])
				return nil
			}
			fmt.Printf(MsgUninstalled, args[0])
			return nil
		},
	}
}

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: MsgRefreshShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, cfg, err := newInstaller(false)
			if err != nil {
				return err
			}

			n, err := inst.Refresh()
			if err != nil {
				return err
			}
			fmt.Printf(MsgRefreshedFormat, n, cfg.ManifestPath)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, _, err := newInstaller(false)
			if err != nil {
				return err
			}

			statuses, err := inst.Statuses()
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				fmt.Println(MsgNoModsTracked)
				return nil
			}

			rows := pterm.TableData{
				{"ID", "NAME", "CATEGORY", "VERSION", "LATEST", "UPDATE", "LINK"},
			}
			for _, s := range statuses {
				update := ""
				if s.Record.HasUpdate {
					update = "yes"
				}
				rows = append(rows, []string{
					s.Record.ID,
					s.Record.Name,
					s.Record.Category,
					s.Record.Version,
					s.Record.LatestVersion,
					update,
					string(s.Kind),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}
