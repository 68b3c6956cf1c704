// Package cli defines the Cobra command tree for the frontkit CLI. Each file
// in this package builds one top-level command (init, add:component, doctor,
// etc.) that NewRootCmd attaches to the root. Command implementations delegate
// to internal packages for business logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
