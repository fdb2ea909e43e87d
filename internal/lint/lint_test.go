package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/lint"
)

func TestDockerfileValidMultiStage(t *testing.T) {
	report := lint.Dockerfile(`# comment
FROM golang:1.21 AS builder
WORKDIR /app
RUN go build \
    -o main

FROM alpine:3.19
COPY --from=builder /app/main .
CMD ["./main"]`)

	assert.True(t, report.Valid())
	assert.NoError(t, report.Err())
	assert.Equal(t, 2, report.Stages)
	assert.Empty(t, report.Warnings)
}

func TestDockerfileMissingFROM(t *testing.T) {
	report := lint.Dockerfile("WORKDIR /app\nCMD [\"sh\"]")

	require.False(t, report.Valid())
	assert.ErrorIs(t, report.Err(), errors.ErrInvalidDockerfile)
	assert.ErrorIs(t, report.Err(), errors.ErrMissingFROM)
}

func TestDockerfileIssues(t *testing.T) {
	report := lint.Dockerfile(`ARG VERSION=1
FROM alpine
MAINTAINER someone
ADD https://example.com/file /tmp/
BOGUS thing`)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, 5, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Message, "BOGUS")
	assert.Len(t, report.Warnings, 3)
	assert.ErrorIs(t, report.Err(), errors.ErrInvalidDockerfile)
}

func TestDockerfileFromFlags(t *testing.T) {
	report := lint.Dockerfile(`FROM --platform=linux/amd64 golang:1.22 AS builder
FROM --platform=$BUILDPLATFORM registry.local:5000/team/app:1.4
FROM scratch
COPY --from=builder /app/main /main`)

	assert.True(t, report.Valid(), report.Errors)
	assert.Equal(t, 3, report.Stages)
	assert.Empty(t, report.Warnings)
}

func TestDockerfileUntaggedImages(t *testing.T) {
	cases := map[string]bool{
		"FROM alpine":                      true,
		"FROM alpine:latest":               true,
		"FROM registry.local:5000/app":     true,
		"FROM --platform=linux/arm64 node": true,
		"FROM node:20-alpine":              false,
		"FROM alpine@sha256:abcdef":        false,
	}

	for content, warn := range cases {
		report := lint.Dockerfile(content)
		assert.True(t, report.Valid(), content)
		assert.Equal(t, warn, len(report.Warnings) == 1, content)
	}
}

func TestDockerfileInstructionsBeforeFrom(t *testing.T) {
	report := lint.Dockerfile(`MAINTAINER someone
ADD app.tar /app
ARG BASE=alpine:3.20
FROM $BASE`)

	require.Len(t, report.Errors, 2)
	assert.Equal(t, 1, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Message, "MAINTAINER before the first FROM")
	assert.Equal(t, 2, report.Errors[1].Line)
	assert.Contains(t, report.Errors[1].Message, "ADD before the first FROM")
	assert.Equal(t, 1, report.Stages)
}

func TestDockerfileFromWithOnlyFlags(t *testing.T) {
	report := lint.Dockerfile("FROM --platform=linux/amd64")
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Message, "requires an image")
}
