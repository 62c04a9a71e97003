package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Cursor marks a position in a table's list index. The pair (seq, id)
// identifies the last item returned, so a follow-up list call resumes
// immediately after it even if later items were appended concurrently.
type Cursor struct {
	Seq int64  `json:"s"`
	ID  string `json:"id"`
}

// EncodeCursor encodes an index position and record id into an opaque
// base64 cursor token.
func EncodeCursor(seq int64, id string) string {
	c := Cursor{Seq: seq, ID: id}
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor decodes an opaque cursor token back into a Cursor.
// Returns an error if the token is not valid base64 or valid JSON.
func DecodeCursor(token string) (*Cursor, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor token: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid cursor payload: %w", err)
	}
	return &c, nil
}
