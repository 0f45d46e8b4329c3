// Package config provides configuration management for the Workforce Manager.
//
// Values come from environment variables, optionally seeded from a .env file,
// and fall back to the default tags on each section's struct.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO settings for change-log archives
//   - Cache: read cache driver (memory, redis) and TTL
//   - Timesheet: notification acknowledgment mode and topic names
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
