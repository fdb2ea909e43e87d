// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/stack"
)

// ProtocolVersion is the MCP revision the server speaks
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server exposes detection and generation as MCP tools over line-delimited
// JSON-RPC
type Server struct {
	service *dockerize.Service
	logger  *zap.Logger
	version string
	in      io.Reader
	out     io.Writer
	mu      sync.Mutex
}

// Option configures the server
type Option func(*Server)

// WithIO replaces stdin/stdout
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.in = in
		s.out = out
	}
}

// WithLogger sets the logger. It must not write to the server's output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version reported by initialize
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates a new MCP server backed by service
func NewServer(service *dockerize.Service, opts ...Option) *Server {
	s := &Server{
		service: service,
		logger:  zap.NewNop(),
		version: "dev",
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Message represents an MCP JSON-RPC message
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC error
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// response is the wire form of a reply. The id is always present and is
// null when the request id could not be read.
type response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Run serves requests until the input closes or ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.in)
	encoder := json.NewEncoder(s.out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadBytes('\n')
		if len(strings.TrimSpace(string(line))) > 0 {
			s.serveLine(ctx, encoder, line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}
	}
}

func (s *Server) serveLine(ctx context.Context, encoder *json.Encoder, line []byte) {
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		s.logger.Debug("unparseable request", zap.Error(err))
		s.send(encoder, s.errorResponse(nil, codeParseError, "Parse error", nil))
		return
	}

	s.logger.Debug("request", zap.String("method", msg.Method))
	if response := s.handleMessage(ctx, &msg); response != nil {
		s.send(encoder, response)
	}
}

func (s *Server) send(encoder *json.Encoder, msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  msg.Result,
		Error:   msg.Error,
	}); err != nil {
		s.logger.Warn("response write failed", zap.Error(err))
	}
}

// handleMessage processes an incoming MCP message. Notifications get no
// response.
func (s *Server) handleMessage(ctx context.Context, msg *Message) *Message {
	if msg.ID == nil {
		return nil
	}

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "tools/list":
		return s.handleToolsList(msg)
	case "tools/call":
		return s.handleToolsCall(ctx, msg)
	case "ping", "shutdown":
		return &Message{JSONRPC: "2.0", ID: msg.ID, Result: map[string]interface{}{}}
	}
	return s.errorResponse(msg.ID, codeMethodNotFound, "Method not found", nil)
}

func (s *Server) handleInitialize(msg *Message) *Message {
	return &Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result: map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]bool{
					"listChanged": false,
				},
			},
			"serverInfo": map[string]string{
				"name":    "dockergen",
				"version": s.version,
			},
		},
	}
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

// Tools returns the tool definitions advertised by tools/list
func Tools() []Tool {
	return []Tool{
		{
			Name:        "dockergen_detect",
			Description: "Detect the project type of a directory from its package.json and marker files",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Path to the project directory"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "dockergen_entrypoint",
			Description: "Resolve the default entry point for a project type in a directory",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Path to the project directory"),
					"type": stringProp("Project type; detected when omitted"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "dockergen_generate",
			Description: "Generate a Dockerfile for a project directory",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Path to the project directory"),
					"type": stringProp("Project type; detected when omitted. One of: " + strings.Join(typeNames(), ", ")),
					"port": map[string]interface{}{
						"type":        []string{"string", "integer"},
						"description": "Port to expose (default 3000)",
					},
					"output":     stringProp("Dockerfile path (default <path>/Dockerfile)"),
					"entrypoint": stringProp("Entry point override"),
					"multistage": map[string]interface{}{
						"type":        "boolean",
						"description": "Prefer a multi-stage build where the stack offers one (default true)",
					},
					"dry_run": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the Dockerfile without writing it",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func typeNames() []string {
	known := stack.Known()
	names := make([]string, len(known))
	for i, t := range known {
		names[i] = t.String()
	}
	return names
}

func (s *Server) handleToolsList(msg *Message) *Message {
	return &Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result: map[string]interface{}{
			"tools": Tools(),
		},
	}
}

func (s *Server) handleToolsCall(ctx context.Context, msg *Message) *Message {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}

	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.errorResponse(msg.ID, codeInvalidParams, "Invalid params", nil)
	}

	var result interface{}
	var err error

	switch params.Name {
	case "dockergen_detect":
		result, err = s.toolDetect(ctx, params.Arguments)
	case "dockergen_entrypoint":
		result, err = s.toolEntryPoint(ctx, params.Arguments)
	case "dockergen_generate":
		result, err = s.toolGenerate(ctx, params.Arguments)
	default:
		return s.errorResponse(msg.ID, codeInvalidParams, "Unknown tool: "+params.Name, nil)
	}

	if err != nil {
		s.logger.Debug("tool failed", zap.String("tool", params.Name), zap.Error(err))
		text := fmt.Sprintf("Error: %v", err)
		// A failed write still carries the rendered Dockerfile
		if result != nil {
			if partial, mErr := json.MarshalIndent(result, "", "  "); mErr == nil {
				text += "\n\n" + string(partial)
			}
		}
		return toolResult(msg.ID, text, true)
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return toolResult(msg.ID, fmt.Sprintf("Error: %v", err), true)
	}
	return toolResult(msg.ID, string(text), false)
}

func toolResult(id interface{}, text string, isError bool) *Message {
	result := map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": text,
			},
		},
	}
	if isError {
		result["isError"] = true
	}
	return &Message{JSONRPC: "2.0", ID: id, Result: result}
}

func requirePath(args map[string]interface{}) (string, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return "", fmt.Errorf("path is required")
	}
	return path, nil
}

func (s *Server) toolDetect(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := requirePath(args)
	if err != nil {
		return nil, err
	}

	result, _, err := s.service.Detect(ctx, path)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, c.Type.String())
	}

	out := map[string]interface{}{
		"type":             result.Type,
		"detected":         result.Detected,
		"language":         result.Language,
		"provider":         result.Provider,
		"manifest_present": result.ManifestPresent,
		"candidates":       candidates,
	}
	if result.ManifestErr != nil {
		out["manifest_error"] = result.ManifestErr.Error()
	}
	return out, nil
}

func (s *Server) toolEntryPoint(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := requirePath(args)
	if err != nil {
		return nil, err
	}

	name, _ := args["type"].(string)
	t, _ := stack.Parse(name)
	if name == "" {
		if t, err = s.service.DetectProjectType(ctx, path); err != nil {
			return nil, err
		}
	}

	ep, err := s.service.GetEntryPoint(ctx, path, t)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":       t,
		"entrypoint": ep,
	}, nil
}

func (s *Server) toolGenerate(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := requirePath(args)
	if err != nil {
		return nil, err
	}

	opts := dockerize.Options{Dir: path}
	if name, _ := args["type"].(string); name != "" {
		opts.Type, _ = stack.Parse(name)
	}
	switch port := args["port"].(type) {
	case string:
		opts.Port = port
	case float64:
		opts.Port = strconv.FormatFloat(port, 'f', -1, 64)
	}
	opts.Output, _ = args["output"].(string)
	opts.EntryPoint, _ = args["entrypoint"].(string)
	if multi, ok := args["multistage"].(bool); ok {
		opts.SingleStage = !multi
	}
	opts.DryRun, _ = args["dry_run"].(bool)

	res, err := s.service.GenerateDockerfile(ctx, opts)
	if res == nil {
		return nil, err
	}

	return map[string]interface{}{
		"type":        res.Type,
		"entrypoint":  res.EntryPoint,
		"port":        res.ExposedPort,
		"family":      res.Family,
		"stages":      res.Stages,
		"output_path": res.OutputPath,
		"written":     res.Written,
		"dockerfile":  res.Dockerfile,
	}, err
}

func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *Message {
	return &Message{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}
