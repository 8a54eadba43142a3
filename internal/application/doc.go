// Package application provides application initialization and dependency wiring.
// It connects the tool configuration, logger, filesystem storage and tsconfig
// loader, and renders the resolution result, keeping the main package focused
// on CLI parsing.
package application
