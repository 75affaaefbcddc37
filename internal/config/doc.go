// Package config provides configuration loading, merging, and validation
// facilities for the notekeeper CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults derived from the user's home directory
//  2. JSON config file
//  3. Environment variables with the NOTEKEEPER_ prefix
//  4. Command-line flags
//
// The main entry point is [Load], which receives the flag values bound by
// [BindFlags] once cobra has parsed the command line.
package config
