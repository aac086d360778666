package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reaction":      map[string]any{"type": "string"},
			"comprehension": map[string]any{"type": "number"},
			"mood":          map[string]any{"type": "string", "enum": []any{"engaged", "confused", "excited"}},
			"confusion_points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"reaction", "comprehension"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["reaction"].Type != "STRING" {
		t.Fatalf("expected STRING for reaction, got %s", schema.Properties["reaction"].Type)
	}
	if schema.Properties["comprehension"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for comprehension, got %s", schema.Properties["comprehension"].Type)
	}
	if len(schema.Properties["mood"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["mood"].Enum))
	}
	if schema.Properties["confusion_points"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for confusion_points, got %s", schema.Properties["confusion_points"].Type)
	}
	if schema.Properties["confusion_points"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for confusion_points items, got %s", schema.Properties["confusion_points"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
