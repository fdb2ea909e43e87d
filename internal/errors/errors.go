// Package errors provides centralized error definitions for dockergen.
package errors

import "errors"

// Scanner errors
var (
	ErrDirectoryUnreadable = errors.New("directory is unreadable")
	ErrPathNotFound        = errors.New("specified path does not exist")
	ErrNotADirectory       = errors.New("specified path is not a directory")
	ErrAccessDenied        = errors.New("access denied to path")
)

// Manifest errors
var (
	ErrManifestParse = errors.New("manifest is not valid structured data")
)

// Template errors
var (
	ErrTemplateNotFound = errors.New("template not found for family")
	ErrTemplateInvalid  = errors.New("template contains syntax errors")
)

// Lint errors
var (
	ErrInvalidDockerfile = errors.New("Dockerfile is invalid")
	ErrMissingFROM       = errors.New("Dockerfile missing FROM instruction")
)

// Config errors
var (
	ErrConfigInvalid  = errors.New("configuration file is invalid")
	ErrConfigNotFound = errors.New("configuration file not found")
)

// Generator errors
var (
	ErrOutputPathInvalid = errors.New("output path is invalid")
	ErrWriteFailed       = errors.New("failed to write output file")
)
