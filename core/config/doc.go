// Package config provides configuration management for the audit service.
//
// It uses Viper to read environment variables, optionally seeded from a .env file via
// godotenv. Defaults live next to each setting as `default:` struct tags and are
// registered by reflection, so every key is visible to AutomaticEnv.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and shutdown bound
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: S3/MinIO credentials and the report outbox bucket
//   - Log: logging level and format
//   - Notify: report delivery driver, object prefix and timeout
//   - Reconcile: registry cache TTL
//
// Nested keys map to upper-case variables joined by underscores, e.g. DATABASE_DRIVER
// or NOTIFY_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
