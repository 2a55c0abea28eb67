package schema

import (
	"encoding/json"
	"testing"
)

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	data, err := FS.ReadFile("config.schema.json")
	if err != nil {
		t.Fatalf("failed to read embedded schema: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("config.schema.json is not valid JSON: %v", err)
	}
	if v["type"] != "object" {
		t.Errorf("expected top-level type object, got %v", v["type"])
	}
}
