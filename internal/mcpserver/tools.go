package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"rainmap/pkg/color"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ColorTools provides MCP tools over the color library.
type ColorTools struct{}

// NewColorTools creates the tool handler set.
func NewColorTools() *ColorTools {
	return &ColorTools{}
}

// GetTools returns every tool paired with its handler.
func (ct *ColorTools) GetTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "color_parse",
				Description: "Parse a CSS-style color literal (#rgb, #rrggbb, rgb(), rgba(), hsl(), hsla() or a named color) into its channels",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"color": map[string]interface{}{
							"type":        "string",
							"description": "Color literal to parse, e.g. '#ff0000' or 'rgba(255,0,0,.5)'",
						},
					},
					Required: []string{"color"},
				},
			},
			Handler: ct.handleColorParse,
		},
		{
			Tool: mcp.Tool{
				Name:        "color_contrast",
				Description: "Pick black or white, whichever reads best on the given background color",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"color": map[string]interface{}{
							"type":        "string",
							"description": "Background color literal",
						},
					},
					Required: []string{"color"},
				},
			},
			Handler: ct.handleColorContrast,
		},
		{
			Tool: mcp.Tool{
				Name:        "color_brighten",
				Description: "Brighten or darken a color by adjusting its HSV value channel",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"color": map[string]interface{}{
							"type":        "string",
							"description": "Color literal to adjust",
						},
						"by": map[string]interface{}{
							"type":        "number",
							"description": "Relative adjustment: 0.5 brightens by half, -0.5 darkens by half",
						},
					},
					Required: []string{"color", "by"},
				},
			},
			Handler: ct.handleColorBrighten,
		},
		{
			Tool: mcp.Tool{
				Name:        "gradient_at",
				Description: "Sample a named color ramp at a position and return the interpolated color",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"gradient": map[string]interface{}{
							"type":        "string",
							"description": "Ramp name from the catalog, e.g. 'Greens' or 'RdYlGn'",
						},
						"value": map[string]interface{}{
							"type":        "number",
							"description": "Sample position; sequential ramps span 0..1, diverging ramps -1..1",
						},
					},
					Required: []string{"gradient", "value"},
				},
			},
			Handler: ct.handleGradientAt,
		},
		{
			Tool: mcp.Tool{
				Name:        "palette_distinct",
				Description: "Return visually distinct colors for categorical series (up to 20)",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"count": map[string]interface{}{
							"type":        "integer",
							"description": "Number of colors needed (default 20)",
						},
					},
				},
			},
			Handler: ct.handlePaletteDistinct,
		},
		{
			Tool: mcp.Tool{
				Name:        "theme_color",
				Description: "Look up a document theme palette, or one of its colors by slot or index",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"theme": map[string]interface{}{
							"type":        "string",
							"description": "Theme name, e.g. 'Office'",
						},
						"slot": map[string]interface{}{
							"type":        "string",
							"enum":        color.SlotNames(),
							"description": "Semantic slot to look up (optional)",
						},
						"index": map[string]interface{}{
							"type":        "integer",
							"description": "Positional index to look up (optional)",
						},
					},
					Required: []string{"theme"},
				},
			},
			Handler: ct.handleThemeColor,
		},
		{
			Tool: mcp.Tool{
				Name:        "catalog_list",
				Description: "List the built-in gradient ramps and theme palettes",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"kind": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"gradients", "themes", "all"},
							"description": "Which catalog to list (default all)",
						},
					},
				},
			},
			Handler: ct.handleCatalogList,
		},
	}
}

func (ct *ColorTools) handleColorParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	literal, err := request.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color parameter is required"), nil
	}

	c, err := color.Parse(literal)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse %q: %v", literal, err)), nil
	}

	h, s, v, a := c.HSVA()

	type colorInfo struct {
		R       float64 `json:"r"`
		G       float64 `json:"g"`
		B       float64 `json:"b"`
		A       float64 `json:"a"`
		H       float64 `json:"h"`
		S       float64 `json:"s"`
		V       float64 `json:"v"`
		Literal string  `json:"literal"`
	}
	info := colorInfo{
		R: c.R, G: c.G, B: c.B, A: a,
		H: h, S: s, V: v,
		Literal: c.String(),
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format color: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (ct *ColorTools) handleColorContrast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	literal, err := request.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color parameter is required"), nil
	}

	result, err := color.Contrast(literal)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse %q: %v", literal, err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (ct *ColorTools) handleColorBrighten(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	literal, err := request.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color parameter is required"), nil
	}
	by, ok := request.GetArguments()["by"].(float64)
	if !ok {
		return mcp.NewToolResultError("by parameter is required and must be a number"), nil
	}

	result, err := color.Brighten(literal, by)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse %q: %v", literal, err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (ct *ColorTools) handleGradientAt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("gradient")
	if err != nil {
		return mcp.NewToolResultError("gradient parameter is required"), nil
	}
	grad, ok := color.Gradients[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown gradient %q, use catalog_list to see available ramps", name)), nil
	}
	value, ok := request.GetArguments()["value"].(float64)
	if !ok {
		return mcp.NewToolResultError("value parameter is required and must be a number"), nil
	}

	literal, err := grad.At(value)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to sample %s: %v", name, err)), nil
	}
	return mcp.NewToolResultText(literal), nil
}

func (ct *ColorTools) handlePaletteDistinct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := 20
	if raw, ok := request.GetArguments()["count"].(float64); ok {
		if raw < 1 {
			return mcp.NewToolResultError("count must be at least 1"), nil
		}
		count = int(raw)
	}

	jsonData, err := json.MarshalIndent(color.Distinct(count), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format palette: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (ct *ColorTools) handleThemeColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	themeName, err := request.RequireString("theme")
	if err != nil {
		return mcp.NewToolResultError("theme parameter is required"), nil
	}
	theme, ok := color.Themes[themeName]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown theme %q, use catalog_list to see available themes", themeName)), nil
	}

	args := request.GetArguments()

	if slot, ok := args["slot"].(string); ok && slot != "" {
		hex, ok := theme.BySlot(slot)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Theme %q has no slot %q", themeName, slot)), nil
		}
		return mcp.NewToolResultText(hex), nil
	}

	if index, ok := args["index"].(float64); ok {
		hex, ok := theme.ByIndex(int(index))
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Theme %q has no color at index %d", themeName, int(index))), nil
		}
		return mcp.NewToolResultText(hex), nil
	}

	type themeInfo struct {
		Name   string            `json:"name"`
		Colors []string          `json:"colors"`
		Slots  map[string]string `json:"slots"`
	}
	info := themeInfo{
		Name:   themeName,
		Colors: theme.Colors(),
		Slots:  make(map[string]string),
	}
	for _, slot := range color.SlotNames() {
		if hex, ok := theme.BySlot(slot); ok {
			info.Slots[slot] = hex
		}
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format theme: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (ct *ColorTools) handleCatalogList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, _ := request.GetArguments()["kind"].(string)

	type catalog struct {
		Gradients []string `json:"gradients,omitempty"`
		Themes    []string `json:"themes,omitempty"`
	}
	var cat catalog
	switch kind {
	case "", "all":
		cat.Gradients = color.GradientNames()
		cat.Themes = color.ThemeNames()
	case "gradients":
		cat.Gradients = color.GradientNames()
	case "themes":
		cat.Themes = color.ThemeNames()
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Invalid kind %q, must be 'gradients', 'themes' or 'all'", kind)), nil
	}

	jsonData, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format catalog: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
