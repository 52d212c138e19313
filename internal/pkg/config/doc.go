// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings from an optional YAML file and from
// environment variables injected by the deployment platform, validating them,
// and making them accessible throughout the application. It centralizes
// configuration management for easier modification and extension.
package config
