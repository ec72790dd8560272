package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkhamd/arkhamd/pkg/config"
)

var (
	initConfigOut string
	initRosterOut string
	initForce     bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config and seed roster",
	Long: `Write a starter config file and a seed roster containing the built-in
example records. Edit the roster, then point the server at it:

  arkhamd init
  arkhamd serve --config arkhamd.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initConfigOut, "config", "c", "arkhamd.yaml", "Config file to write")
	initCmd.Flags().StringVar(&initRosterOut, "roster", "roster.yaml", "Seed roster file to write")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		for _, path := range []string{initConfigOut, initRosterOut} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	cfg := config.Default()
	cfg.SeedFile = initRosterOut
	if err := config.Save(initConfigOut, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := config.SaveRoster(initRosterOut, config.DefaultRoster()); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	fmt.Printf("Wrote %s and %s\n", initConfigOut, initRosterOut)
	fmt.Printf("Start the server with: arkhamd serve --config %s\n", initConfigOut)
	return nil
}
