// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (tracker only)
//
// The main entry points are [GetStructuredConfig] for the tracker server and
// [GetTrainerConfig] for the trainer binary. Experiment definitions are not
// part of this package: they live in YAML files loaded by the service layer.
package config
