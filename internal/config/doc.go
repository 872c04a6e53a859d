// Package config defines the application configuration structures and the
// loading logic that populates them from config files and environment
// variables.
package config
