package middleware

import "testing"

func TestWebhookSignature(t *testing.T) {
	// sha1("secret:a:b") precomputed
	got := WebhookSignature("secret", []string{"a", "b"})
	want := "992cafbb663946bb29c6272f4c817429d6c49f4c"
	if got != want {
		t.Errorf("WebhookSignature = %q, want %q", got, want)
	}

	// signature changes when any field changes
	other := WebhookSignature("secret", []string{"a", "c"})
	if other == got {
		t.Error("different field values produced identical signatures")
	}

	// field order matters
	swapped := WebhookSignature("secret", []string{"b", "a"})
	if swapped == got {
		t.Error("swapped field order produced identical signature")
	}
}
