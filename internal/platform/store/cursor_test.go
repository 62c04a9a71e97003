package store

import "testing"

func TestCursorRoundTrip(t *testing.T) {
	token := EncodeCursor(42, "w42")
	c, err := DecodeCursor(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Seq != 42 || c.ID != "w42" {
		t.Errorf("expected (42, w42), got (%d, %s)", c.Seq, c.ID)
	}
}

func TestDecodeCursor_BadBase64(t *testing.T) {
	if _, err := DecodeCursor("%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDecodeCursor_BadPayload(t *testing.T) {
	if _, err := DecodeCursor("bm90LWpzb24"); err == nil {
		t.Error("expected error for invalid payload")
	}
}
