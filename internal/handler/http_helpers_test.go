package handler

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stellarnotes/internal/service"
)

func TestDecodeErrorFields(t *testing.T) {
	var patch service.AnnotationPatch

	err := json.Unmarshal([]byte(`{"label":5}`), &patch)
	fields := decodeErrorFields(err)
	if len(fields["label"]) != 1 || !strings.HasPrefix(fields["label"][0], "Incorrect type.") {
		t.Fatalf("expected label type error, got %v", fields)
	}

	err = json.Unmarshal([]byte(`{"label":`), &patch)
	fields = decodeErrorFields(err)
	if len(fields[service.NonFieldErrorsKey]) != 1 {
		t.Fatalf("expected non_field_errors, got %v", fields)
	}

	fields = decodeErrorFields(errors.New("EOF"))
	if fields[service.NonFieldErrorsKey][0] != "Invalid request body." {
		t.Fatalf("unexpected fallback message: %v", fields)
	}
}

func TestRenderDescription(t *testing.T) {
	if got := renderDescription("   "); got != "" {
		t.Fatalf("expected empty output for blank description, got %q", got)
	}

	got := string(renderDescription("Launch from **Kennedy** <img src=x onerror=alert(1)>"))
	if !strings.Contains(got, "<strong>Kennedy</strong>") {
		t.Fatalf("expected markdown to render, got %q", got)
	}
	if strings.Contains(got, "onerror") {
		t.Fatalf("expected unsafe markup to be dropped, got %q", got)
	}
}
