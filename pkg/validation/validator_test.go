package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type rsvpPayload struct {
	Status string `json:"status" binding:"required,rsvpstatus"`
	Notes  string `json:"notes" binding:"max=10"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	Init()
	return binding.Validator.ValidateStruct(v)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := validate(t, &rsvpPayload{})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	details := ToDetails(err)
	if details["status"] != "is required" {
		t.Errorf("details = %v, want status: is required", details)
	}
}

func TestToDetailsAliasMessages(t *testing.T) {
	t.Run("rsvpstatus", func(t *testing.T) {
		err := validate(t, &rsvpPayload{Status: "perhaps"})
		details := ToDetails(err)
		if details["status"] != "must be one of: yes, no, maybe" {
			t.Errorf("details = %v", details)
		}
	})

	t.Run("max on a string counts characters", func(t *testing.T) {
		err := validate(t, &rsvpPayload{Status: "yes", Notes: "well beyond ten"})
		details := ToDetails(err)
		if details["notes"] != "must be at most 10 characters long" {
			t.Errorf("details = %v", details)
		}
	})
}

func TestToDetailsNonValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if got := ToDetails(nil); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var p rsvpPayload
		err := json.Unmarshal([]byte("{"), &p)
		if got := ToDetails(err); got["payload"] != "invalid json" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("valid payload produces no error", func(t *testing.T) {
		if err := validate(t, &rsvpPayload{Status: "maybe"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// Init must be safe to call repeatedly; Gin's binding engine is a
// process-wide singleton.
func TestInitIdempotent(t *testing.T) {
	Init()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok || v == nil {
		t.Fatal("binding engine is not the playground validator")
	}
}
