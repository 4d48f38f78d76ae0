package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tavernkeep/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var driver string
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a tavernkeep.yaml for a new campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(cmd, projectName, driver, dsn)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&driver, "driver", config.DriverBolt, "Store driver: none, memory, bolt, sqlite or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Store location; defaults to tavernkeep.db for bolt")
	return cmd
}

func runInit(cmd *cobra.Command, projectName, driver, dsn string) error {
	cfg := config.DefaultConfig(projectName)
	cfg.Store.Driver = strings.ToLower(driver)
	switch {
	case dsn != "":
		cfg.Store.DSN = dsn
	case cfg.Store.Driver == config.DriverSQLite:
		cfg.Store.DSN = "sqlite://tavernkeep.sqlite"
	case cfg.Store.Driver != config.DriverBolt:
		cfg.Store.DSN = ""
	}

	if err := config.Write(configPath, cfg); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", configPath)
	return nil
}
