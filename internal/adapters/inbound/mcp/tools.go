package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/config"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/history"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/loader"
	"github.com/kubegrade/kubegrade/internal/application"
	"github.com/kubegrade/kubegrade/internal/domain"
	"github.com/kubegrade/kubegrade/internal/domain/rubric"
)

// registerTools registers all kubegrade MCP tools on the given server.
func registerTools(s *server.MCPServer, challengeDir string) {
	// 1. kubegrade_report
	s.AddTool(
		mcplib.NewTool("kubegrade_report",
			mcplib.WithDescription("Grade all four challenge manifests and return the full scored report as JSON"),
		),
		handleReport(challengeDir),
	)

	// 2. kubegrade_check_manifest
	s.AddTool(
		mcplib.NewTool("kubegrade_check_manifest",
			mcplib.WithDescription("Grade a single manifest kind and return its checks and points"),
			mcplib.WithString("kind",
				mcplib.Required(),
				mcplib.Description("Manifest kind to grade: deployment, service, configmap, or secret"),
			),
		),
		handleCheckManifest(challengeDir),
	)

	// 3. kubegrade_history
	s.AddTool(
		mcplib.NewTool("kubegrade_history",
			mcplib.WithDescription("Return saved grading runs for the challenge directory"),
		),
		handleHistory(challengeDir),
	)
}

func manifestDir(challengeDir string) (string, error) {
	opts, err := config.New().Load(challengeDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(challengeDir, opts.ManifestDir), nil
}

func handleReport(challengeDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, err := manifestDir(challengeDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading options: %v", err)), nil
		}
		report := application.NewGradeService(loader.New()).Grade(dir)
		return jsonResult(report)
	}
}

func handleCheckManifest(challengeDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kindName, err := request.RequireString("kind")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		dir, err := manifestDir(challengeDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading options: %v", err)), nil
		}

		for _, kind := range rubric.Kinds() {
			if !strings.EqualFold(kind.Name, kindName) {
				continue
			}
			manifest := loader.New().Load(filepath.Join(dir, kind.File))
			result := domain.KindResult{
				Kind:    kind.Name,
				File:    kind.File,
				Outcome: kind.Evaluate(manifest),
			}
			return jsonResult(result)
		}
		return errorResult(fmt.Sprintf("unknown manifest kind %q (want deployment, service, configmap, or secret)", kindName)), nil
	}
}

func handleHistory(challengeDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(challengeDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		if entries == nil {
			entries = []domain.GradeEntry{}
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
