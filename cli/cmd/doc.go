// Package cmd implements the scadgen subcommands: render, tree, catalog and
// init.
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the configuration file.
var ConfigIdentifier = "config"
