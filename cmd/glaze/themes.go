package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glaze/internal/logger"
	"github.com/alexisbeaulieu97/glaze/internal/registry"
)

func newThemesCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Manage installed theme packs",
		Long:  "Manage the glaze theme-pack registry: install packs from git repositories, list, update, and remove them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newThemesAddCmd(flags, log))
	cmd.AddCommand(newThemesListCmd(flags, log))
	cmd.AddCommand(newThemesRemoveCmd(flags, log))
	cmd.AddCommand(newThemesUpdateCmd(flags, log))

	return cmd
}

func openRegistry() (*registry.Registry, *registry.Installer, error) {
	regPath, err := registry.DefaultRegistryPath()
	if err != nil {
		return nil, nil, err
	}
	packsRoot, err := registry.DefaultPacksRoot()
	if err != nil {
		return nil, nil, err
	}
	reg, err := registry.New(regPath)
	if err != nil {
		return nil, nil, err
	}
	return reg, registry.NewInstaller(packsRoot), nil
}

func packNameFromURL(url string) string {
	base := filepath.Base(strings.TrimSuffix(url, "/"))
	return strings.TrimSuffix(base, ".git")
}

func newThemesAddCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var name string
	var ref string

	cmd := &cobra.Command{
		Use:   "add <git-url>",
		Short: "Install a theme pack from a git repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if name == "" {
				name = packNameFromURL(url)
			}

			reg, installer, err := openRegistry()
			if err != nil {
				return err
			}
			if _, exists := reg.Get(name); exists {
				return fmt.Errorf("pack already installed: %s", name)
			}

			log.WithFields(map[string]any{"pack": name, "url": url}).Info("installing theme pack")

			pack, err := installer.Install(cmd.Context(), name, url, ref)
			if err != nil {
				return err
			}

			themes, err := registry.Themes(pack)
			if err != nil {
				_ = installer.Uninstall(pack)
				return fmt.Errorf("pack %s contains invalid themes: %w", name, err)
			}

			if err := reg.Add(pack); err != nil {
				_ = installer.Uninstall(pack)
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "installed %s (%d themes)\n", pack.Name, len(themes))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Registry name for the pack (defaults to the repository name)")
	cmd.Flags().StringVar(&ref, "ref", "", "Branch to clone")

	return cmd
}

func newThemesListCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed theme packs and their themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := openRegistry()
			if err != nil {
				return err
			}

			packs := reg.List()
			if len(packs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no theme packs installed")
				return nil
			}

			for _, pack := range packs {
				themes, err := registry.Themes(pack)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(broken: %v)\n", pack.Name, pack.URL, err)
					continue
				}
				names := make([]string, 0, len(themes))
				for name := range themes {
					names = append(names, name)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", pack.Name, pack.URL, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func newThemesRemoveCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an installed theme pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			reg, installer, err := openRegistry()
			if err != nil {
				return err
			}

			pack, ok := reg.Get(name)
			if !ok {
				return fmt.Errorf("pack not found: %s", name)
			}

			if err := installer.Uninstall(pack); err != nil {
				return err
			}
			if err := reg.Remove(name); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			log.WithFields(map[string]any{"pack": name}).Info("removed theme pack")
			return nil
		},
	}
}

func newThemesUpdateCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "update [name]",
		Short: "Update installed theme packs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, installer, err := openRegistry()
			if err != nil {
				return err
			}

			packs := reg.List()
			if len(args) == 1 {
				pack, ok := reg.Get(args[0])
				if !ok {
					return fmt.Errorf("pack not found: %s", args[0])
				}
				packs = []registry.Pack{pack}
			}

			for _, pack := range packs {
				log.WithFields(map[string]any{"pack": pack.Name}).Info("updating theme pack")
				if err := installer.Update(cmd.Context(), pack); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %d pack(s)\n", len(packs))
			return nil
		},
	}
}
