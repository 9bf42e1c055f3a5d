package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayload_AllowListAndOwnerStamp(t *testing.T) {
	body := map[string]any{
		"title":   "Shopping list",
		"userId":  "attacker00000000000000ff",
		"sneaky":  "not allowed",
		"tags":    []any{"aaaaaaaaaaaaaaaaaaaaaaaa"},
		"ignored": true,
	}

	payload := BuildPayload([]string{"title", "tags", "folderId"}, body, "000000000000000000000001")

	assert.Equal(t, map[string]any{
		"userId": "000000000000000000000001",
		"title":  "Shopping list",
		"tags":   []any{"aaaaaaaaaaaaaaaaaaaaaaaa"},
	}, payload)
}

func TestBuildPayload_DropsFalsyValues(t *testing.T) {
	body := map[string]any{
		"title":    "",
		"folderId": nil,
		"count":    float64(0),
		"flag":     false,
	}

	payload := BuildPayload([]string{"title", "folderId", "count", "flag"}, body, "000000000000000000000001")

	assert.Equal(t, map[string]any{"userId": "000000000000000000000001"}, payload)
}

func TestBuildPayload_EmptyArrayIsKept(t *testing.T) {
	body := map[string]any{"tags": []any{}}

	payload := BuildPayload([]string{"tags"}, body, "000000000000000000000001")

	// Clearing all tags is a legitimate update; arrays are never falsy.
	assert.Equal(t, []any{}, payload["tags"])
}

func TestBuildPayload_AbsentFieldsOmitted(t *testing.T) {
	payload := BuildPayload([]string{"title", "document"}, map[string]any{}, "000000000000000000000001")
	assert.Equal(t, map[string]any{"userId": "000000000000000000000001"}, payload)
}
