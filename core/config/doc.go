// Package config provides configuration management for finledger.
//
// It uses Viper to merge, in increasing precedence, struct-tag defaults, an optional
// config.yaml, a .env file (godotenv) and environment variables.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the statements bucket
//   - Log: level, format and optional rotating file
//   - Reconcile: default tolerances, severity thresholds and enabled asset classes
//   - Golden: golden holdings cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
