package cmd

import (
	"errors"
	"fmt"
	"os"

	"place-manager/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dbCmd is the parent command for schema operations.
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the place database",
}

var dbCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the places table",
	RunE:  runDBMigrate,
}

var dbUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Migrate the places table to the current schema",
	RunE:  runDBMigrate,
}

var dbInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the columns of the places table",
	RunE:  runDBInspect,
}

var dbDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the sqlite database file",
	RunE:  runDBDelete,
}

func init() {
	dbCmd.AddCommand(dbCreateCmd, dbUpdateCmd, dbInspectCmd, dbDeleteCmd)
	RootCmd.AddCommand(dbCmd)
}

func runDBMigrate(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	if _, err := openPlaces(cfg); err != nil {
		return err
	}
	l.Info("Schema is up to date", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))
	return nil
}

func runDBInspect(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	columns, err := database.GetTableColumns(db, "places")
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		l.Warn("Table places does not exist, run db create first")
		return nil
	}

	fmt.Printf("%-12s %-24s %-5s %-4s\n", "FIELD", "TYPE", "NULL", "KEY")
	for _, c := range columns {
		fmt.Printf("%-12s %-24s %-5s %-4s\n", c.Field, c.Type, c.Null, c.Key)
	}
	return nil
}

func runDBDelete(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	if !cfg.Database.IsSQLite() {
		return fmt.Errorf("db delete only supports the sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.IsMemory() {
		l.Info("In-memory database, nothing to delete")
		return nil
	}

	for _, path := range []string{cfg.Database.Name, cfg.Database.Name + "-wal", cfg.Database.Name + "-shm"} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	l.Info("Deleted database", zap.String("name", cfg.Database.Name))
	return nil
}
