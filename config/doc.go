// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Missing values fall back to the documented defaults, which match the cost
// model the service has always shipped with.
package config
