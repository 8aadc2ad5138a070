package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/blueelliott/singular-controls/pkg/singular"
)

func (s *Server) handleListAssets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assets := make([]AssetInfo, 0, s.registry.Len())
	s.registry.Each(func(key string, asset *singular.Asset) {
		fields := make([]string, 0, len(asset.Fields))
		for fid := range asset.Fields {
			if fid == "" {
				continue
			}
			fields = append(fields, fid)
		}
		sort.Strings(fields)
		assets = append(assets, AssetInfo{
			Key:    key,
			ID:     asset.ID,
			Name:   asset.Name,
			Fields: fields,
		})
	})

	out := ListAssetsOutput{
		Assets: assets,
		Count:  len(assets),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRefreshRegistry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := s.registry.Rebuild(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rebuild registry: %s", err)), nil
	}

	out := RefreshRegistryOutput{
		Success: true,
		Count:   count,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAsset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := requiredString(request, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolved, asset, err := s.registry.Resolve(key)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("asset not found: %s", err)), nil
	}

	fields := make([]FieldInfo, 0, len(asset.Fields))
	for fid, f := range asset.Fields {
		if fid == "" {
			continue
		}
		fields = append(fields, FieldInfo{ID: fid, Type: f.Type})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].ID < fields[j].ID })

	out := GetAssetOutput{
		Key:    resolved,
		ID:     asset.ID,
		Name:   asset.Name,
		Fields: fields,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleAnimateIn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.animate(ctx, request, singular.StateIn)
}

func (s *Server) handleAnimateOut(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.animate(ctx, request, singular.StateOut)
}

func (s *Server) animate(ctx context.Context, request mcp.CallToolRequest, state string) (*mcp.CallToolResult, error) {
	key, err := requiredString(request, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var res *singular.CommandResult
	if state == singular.StateIn {
		res, err = s.dispatcher.In(ctx, key)
	} else {
		res, err = s.dispatcher.Out(ctx, key)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to animate: %s", err)), nil
	}

	out := AnimateOutput{
		Success: true,
		Key:     res.Key,
		ID:      res.ID,
		State:   state,
		Status:  res.Status,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetField(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := requiredString(request, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	field, err := requiredString(request, "field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := requiredString(request, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	asString := false
	if v, ok := request.GetArguments()["as_string"].(bool); ok {
		asString = v
	}

	res, err := s.dispatcher.SetField(ctx, key, field, value, asString)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set field: %s", err)), nil
	}

	out := SetFieldOutput{
		Success: true,
		Key:     res.Key,
		ID:      res.ID,
		Sent:    res.Sent,
		Status:  res.Status,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTimeControl(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := requiredString(request, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	field, err := requiredString(request, "field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	req := singular.TimeControlRequest{FieldID: field, Run: true}
	if v, ok := args["run"].(bool); ok {
		req.Run = v
	}
	if v, ok := args["value"].(float64); ok {
		req.Value = int(v)
	}
	if v, ok := args["seconds"].(float64); ok {
		secs := int(v)
		req.Seconds = &secs
	}

	res, err := s.dispatcher.TimeControl(ctx, key, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to control timer: %s", err)), nil
	}

	out := TimeControlOutput{
		Success: true,
		Key:     res.Key,
		ID:      res.ID,
		Sent:    res.Sent,
		Status:  res.Status,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRecentEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 20
	if v, ok := request.GetArguments()["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	entries := s.events.Recent(limit)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}

	out := RecentEventsOutput{
		Events: lines,
		Count:  len(lines),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
