// Package config provides centralized configuration management for the
// flight-prices truncation toolkit. It loads configuration from multiple
// sources and exposes the path registry used by every command.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml next to the data root)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern FLIGHT_* for namespacing:
//
//	FLIGHT_LOGGING_LEVEL=debug
//	FLIGHT_FETCH_DATASET=dilwong/flightprices
//	FLIGHT_DATA_DIR=/srv/flightprices/data
package config
