// Package lint performs structural checks on Dockerfile text.
package lint

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dublyo/dockergen/internal/errors"
)

// Issue is a lint error or warning tied to a line
type Issue struct {
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of linting one Dockerfile
type Report struct {
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stages   int     `json:"stages" yaml:"stages"`
}

// Valid reports whether the Dockerfile has no errors
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a valid report, otherwise an error wrapping
// ErrInvalidDockerfile (and ErrMissingFROM when no stage was found)
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	if r.Stages == 0 {
		return fmt.Errorf("%w: %w", errors.ErrInvalidDockerfile, errors.ErrMissingFROM)
	}
	return fmt.Errorf("%w: %d errors, first on line %d: %s",
		errors.ErrInvalidDockerfile, len(r.Errors), r.Errors[0].Line, r.Errors[0].Message)
}

var validInstructions = map[string]bool{
	"FROM": true, "RUN": true, "CMD": true, "LABEL": true,
	"EXPOSE": true, "ENV": true, "ADD": true, "COPY": true,
	"ENTRYPOINT": true, "VOLUME": true, "USER": true,
	"WORKDIR": true, "ARG": true, "ONBUILD": true,
	"STOPSIGNAL": true, "HEALTHCHECK": true, "SHELL": true,
	"MAINTAINER": true,
}

// Dockerfile checks content for unknown instructions, a missing FROM and a
// few deprecated practices
func Dockerfile(content string) *Report {
	report := &Report{}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		start := lineNum
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Handle line continuation
		for strings.HasSuffix(line, "\\") && scanner.Scan() {
			lineNum++
			line = strings.TrimSuffix(line, "\\") + " " + strings.TrimSpace(scanner.Text())
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		instruction := strings.ToUpper(parts[0])

		if !validInstructions[instruction] {
			report.Errors = append(report.Errors, Issue{
				Line:    start,
				Message: fmt.Sprintf("unknown instruction: %s", instruction),
			})
			continue
		}

		if report.Stages == 0 && instruction != "FROM" && instruction != "ARG" {
			report.Errors = append(report.Errors, Issue{
				Line:    start,
				Message: fmt.Sprintf("%s before the first FROM", instruction),
			})
		}

		switch instruction {
		case "FROM":
			report.Stages++
			image, ok := firstArg(parts[1:])
			if !ok {
				report.Errors = append(report.Errors, Issue{Line: start, Message: "FROM requires an image"})
			} else if untagged(image) {
				report.Warnings = append(report.Warnings, Issue{
					Line:    start,
					Message: "consider using a specific tag instead of 'latest'",
				})
			}
		case "MAINTAINER":
			report.Warnings = append(report.Warnings, Issue{
				Line:    start,
				Message: "MAINTAINER is deprecated, use LABEL maintainer= instead",
			})
		case "ADD":
			if src, ok := firstArg(parts[1:]); ok && (strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")) {
				report.Warnings = append(report.Warnings, Issue{
					Line:    start,
					Message: "consider using RUN curl/wget instead of ADD for URLs",
				})
			}
		}
	}

	if report.Stages == 0 {
		report.Errors = append(report.Errors, Issue{
			Line:    1,
			Message: "Dockerfile must start with FROM instruction",
		})
	}

	return report
}

// firstArg returns the first argument that is not a --flag such as
// --platform or --chown
func firstArg(args []string) (string, bool) {
	for _, a := range args {
		if !strings.HasPrefix(a, "--") {
			return a, true
		}
	}
	return "", false
}

// untagged reports whether image floats on latest. The registry host may
// carry a port, so only the last path segment is checked for a tag.
func untagged(image string) bool {
	if image == "scratch" || strings.Contains(image, "@") || strings.HasPrefix(image, "$") {
		return false
	}
	name := image[strings.LastIndex(image, "/")+1:]
	tag := ""
	if i := strings.LastIndex(name, ":"); i >= 0 {
		tag = name[i+1:]
	}
	return tag == "" || tag == "latest"
}
