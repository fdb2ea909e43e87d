package mcp_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/mcp"
)

type response struct {
	ID     json.RawMessage `json:"id"`
	Result struct {
		ProtocolVersion string `json:"protocolVersion"`
		Tools           []struct {
			Name string `json:"name"`
		} `json:"tools"`
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *mcp.RPCError `json:"error"`
}

func serve(t *testing.T, requests ...string) []response {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(requests, "\n") + "\n")

	srv := mcp.NewServer(dockerize.New(), mcp.WithIO(in, &out), mcp.WithVersion("test"))
	require.NoError(t, srv.Run(context.Background()))

	var responses []response
	sc := bufio.NewScanner(&out)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var r response
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r), sc.Text())
		responses = append(responses, r)
	}
	return responses
}

func call(id int, tool string, args map[string]interface{}) string {
	b, _ := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  map[string]interface{}{"name": tool, "arguments": args},
	})
	return string(b)
}

func TestInitializeAndList(t *testing.T) {
	rs := serve(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	)
	require.Len(t, rs, 2, "notifications get no response")

	assert.Equal(t, mcp.ProtocolVersion, rs[0].Result.ProtocolVersion)

	var names []string
	for _, tool := range rs[1].Result.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"dockergen_detect", "dockergen_entrypoint", "dockergen_generate"}, names)
}

func TestParseErrorAndUnknownMethod(t *testing.T) {
	rs := serve(t,
		`{not json`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
	)
	require.Len(t, rs, 2)
	require.NotNil(t, rs[0].Error)
	assert.Equal(t, -32700, rs[0].Error.Code)
	require.NotNil(t, rs[1].Error)
	assert.Equal(t, -32601, rs[1].Error.Code)
}

func TestDetectAndGenerateTools(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	rs := serve(t,
		call(1, "dockergen_detect", map[string]interface{}{"path": dir}),
		call(2, "dockergen_entrypoint", map[string]interface{}{"path": dir}),
		call(3, "dockergen_generate", map[string]interface{}{"path": dir, "port": "9090", "dry_run": true}),
	)
	require.Len(t, rs, 3)

	var detect map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rs[0].Result.Content[0].Text), &detect))
	assert.Equal(t, "golang", detect["type"])
	assert.Equal(t, true, detect["detected"])

	var ep map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rs[1].Result.Content[0].Text), &ep))
	assert.Equal(t, "main.go", ep["entrypoint"])

	var gen map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rs[2].Result.Content[0].Text), &gen))
	assert.Equal(t, false, gen["written"])
	assert.Contains(t, gen["dockerfile"], "EXPOSE 9090")
	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile"))
}

func TestToolErrors(t *testing.T) {
	rs := serve(t,
		call(1, "dockergen_detect", map[string]interface{}{}),
		call(2, "dockergen_generate", map[string]interface{}{"path": filepath.Join(t.TempDir(), "missing")}),
		call(3, "docker_build", map[string]interface{}{"path": "."}),
	)
	require.Len(t, rs, 3)

	assert.True(t, rs[0].Result.IsError)
	assert.Contains(t, rs[0].Result.Content[0].Text, "path is required")
	assert.True(t, rs[1].Result.IsError)
	assert.Contains(t, rs[1].Result.Content[0].Text, "directory is unreadable")
	require.NotNil(t, rs[2].Error)
	assert.Equal(t, -32602, rs[2].Error.Code)
}

func TestParseErrorCarriesNullID(t *testing.T) {
	rs := serve(t,
		`{not json`,
		`{"jsonrpc":"2.0","method":"ping"}`,
		`{"jsonrpc":"2.0","method":"shutdown"}`,
		`{"jsonrpc":"2.0","id":7,"method":"ping"}`,
	)
	require.Len(t, rs, 2, "ping and shutdown notifications get no response")

	assert.Equal(t, "null", string(rs[0].ID))
	assert.Equal(t, "7", string(rs[1].ID))
	assert.Nil(t, rs[1].Error)
}

func TestGenerateAcceptsNumericPort(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), nil, 0o644))

	rs := serve(t, call(1, "dockergen_generate", map[string]interface{}{"path": dir, "port": 8080, "dry_run": true}))
	require.Len(t, rs, 1)
	require.False(t, rs[0].Result.IsError, rs[0].Result.Content[0].Text)

	var gen map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rs[0].Result.Content[0].Text), &gen))
	assert.Equal(t, "8080", gen["port"])
	assert.Contains(t, gen["dockerfile"], "EXPOSE 8080")
}

func TestGenerateWriteFailureReturnsDockerfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	output := filepath.Join(dir, "missing", "Dockerfile")

	rs := serve(t, call(1, "dockergen_generate", map[string]interface{}{"path": dir, "output": output}))
	require.Len(t, rs, 1)

	assert.True(t, rs[0].Result.IsError)
	text := rs[0].Result.Content[0].Text
	assert.Contains(t, text, "failed to write output file")
	assert.Contains(t, text, `"written": false`)
	assert.Contains(t, text, "FROM golang:1.21 AS builder")
	assert.NoFileExists(t, output)
}
