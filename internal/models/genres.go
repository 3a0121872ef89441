package models

import (
	"encoding/json"
	"fmt"
)

// Genre tags persist as a JSON-encoded array in a text column. These two
// helpers are the only encode/decode path; the db packages call them on
// every read and write so the raw column never leaks upward.

func EncodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	raw, err := json.Marshal(genres)
	if err != nil {
		return "", fmt.Errorf("encode genres: %w", err)
	}
	return string(raw), nil
}

func DecodeGenres(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var genres []string
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil, fmt.Errorf("decode genres %q: %w", raw, err)
	}
	return genres, nil
}
