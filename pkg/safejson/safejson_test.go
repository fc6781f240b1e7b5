package safejson

import (
	"errors"
	"testing"
)

func TestDecode_DirectJSON(t *testing.T) {
	var got map[string]any
	if err := Decode(`{"fraud_score":0.4,"fraud_decision":"SAFE"}`, &got); err != nil {
		t.Fatalf("expected direct decode, got %v", err)
	}
	if got["fraud_decision"] != "SAFE" {
		t.Fatalf("expected SAFE, got %v", got["fraud_decision"])
	}
}

func TestDecode_FencedBlock(t *testing.T) {
	t.Run("with language tag", func(t *testing.T) {
		raw := "Here is the result:\n```json\n{\"validation_passed\":true}\n```\nHope this helps."
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected fenced decode, got %v", err)
		}
		if got["validation_passed"] != true {
			t.Fatalf("expected validation_passed=true, got %v", got["validation_passed"])
		}
	})

	t.Run("without language tag", func(t *testing.T) {
		raw := "```\n{\"ok\":1}\n```"
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected fenced decode, got %v", err)
		}
	})

	t.Run("tilde fence", func(t *testing.T) {
		raw := "~~~json\n{\"ok\":1}\n~~~"
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected tilde fenced decode, got %v", err)
		}
	})
}

func TestDecode_EmbeddedObject(t *testing.T) {
	t.Run("object inside prose", func(t *testing.T) {
		raw := `Based on my analysis, the result is {"fraud_score": 0.92, "fraud_decision": "SUSPECT"} as requested.`
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected embedded decode, got %v", err)
		}
		if got["fraud_decision"] != "SUSPECT" {
			t.Fatalf("expected SUSPECT, got %v", got["fraud_decision"])
		}
	})

	t.Run("braces inside strings", func(t *testing.T) {
		raw := `Result: {"note":"uses {braces} and \"quotes\"","ok":true} done`
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected embedded decode, got %v", err)
		}
		if got["note"] != `uses {braces} and "quotes"` {
			t.Fatalf("unexpected note: %v", got["note"])
		}
	})

	t.Run("nested objects", func(t *testing.T) {
		raw := `{"outer":{"inner":{"deep":true}}}`
		var got map[string]any
		if err := Decode(raw, &got); err != nil {
			t.Fatalf("expected nested decode, got %v", err)
		}
	})
}

func TestDecode_NoJSON(t *testing.T) {
	cases := []string{
		"",
		"I could not produce a result.",
		"{ this is not json }",
		"```\nnot json either\n```",
	}
	for _, raw := range cases {
		var got map[string]any
		if err := Decode(raw, &got); !errors.Is(err, ErrNoJSON) {
			t.Fatalf("raw %q: expected ErrNoJSON, got %v", raw, err)
		}
	}
}

func TestDecode_TypedTarget(t *testing.T) {
	type payload struct {
		MissingDocuments []string `json:"missing_documents"`
		ValidationPassed bool     `json:"validation_passed"`
	}
	raw := "```json\n{\"missing_documents\":[\"id_proof\"],\"validation_passed\":false}\n```"
	var got payload
	if err := Decode(raw, &got); err != nil {
		t.Fatalf("expected decode, got %v", err)
	}
	if len(got.MissingDocuments) != 1 || got.MissingDocuments[0] != "id_proof" {
		t.Fatalf("unexpected missing_documents: %v", got.MissingDocuments)
	}
}
