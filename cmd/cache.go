package cmd

import (
	"errors"
	"fmt"
	"time"

	"place-manager/feature/overpass"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cacheCmd is the parent command for snapshot cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or reset the Overpass snapshot cache",
	Long: `The cached snapshot never expires. Clear it to make the next sync query Overpass again.`,
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cache location and age",
	RunE:  runCacheShow,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached snapshot",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd, cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}

func runCacheShow(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	cache, err := newCache(cfg)
	if err != nil {
		return err
	}

	entry, err := cache.Load(cmd.Context())
	if errors.Is(err, overpass.ErrCacheMiss) {
		fmt.Printf("Location: %s\nStatus:   empty\n", cache.Location())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Location: %s\n", cache.Location())
	fmt.Printf("Size:     %d bytes\n", len(entry.Data))
	fmt.Printf("Modified: %s (%s ago)\n", entry.ModifiedAt.Format(time.RFC3339), time.Since(entry.ModifiedAt).Round(time.Second))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	cache, err := newCache(cfg)
	if err != nil {
		return err
	}
	if err := cache.Clear(cmd.Context()); err != nil {
		return err
	}
	l.Info("Cleared snapshot cache", zap.String("location", cache.Location()))
	return nil
}
