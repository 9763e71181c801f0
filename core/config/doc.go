// Package config provides configuration management for the Place Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: sqlite, MySQL or PostgreSQL connection details
//   - Storage: S3/MinIO credentials and bucket, used by the object cache
//   - Log: Logging level and format
//   - Overpass: endpoint, query and timeout of the snapshot source
//   - Cache: snapshot cache backend (file or object)
//   - Sync: scheduler interval, revival and lock settings
//   - Redis: optional lock backend
//
// Environment keys are the section and field joined by an underscore, for example
// DATABASE_DRIVER or SYNC_INTERVAL_MINUTES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
