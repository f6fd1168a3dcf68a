package gloss

import (
	"encoding/json"
	"strings"
)

// The model service is instructed to reply with a bare JSON payload, but
// replies routinely arrive wrapped in prose or markdown fences. These
// parsers locate the payload by scanning from the first opening bracket
// to the last closing one, mirroring a greedy pattern match, and treat
// anything unparseable as a failure for the caller to handle. They never
// panic on malformed input.

// FindJSONArray locates a JSON array of strings embedded in free-form
// model output. Returns EINVALID if no array is present or it does not
// parse as an array of strings.
func FindJSONArray(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, Errorf(EINVALID, "no JSON array found in model response")
	}

	var terms []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &terms); err != nil {
		return nil, Errorf(EINVALID, "malformed JSON array in model response: %s", err)
	}
	return terms, nil
}

// FindJSONEntries locates a JSON object keyed by term embedded in
// free-form model output. Returns EINVALID if no object is present or it
// does not parse as term entries.
func FindJSONEntries(text string) (map[string]Entry, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, Errorf(EINVALID, "no JSON object found in model response")
	}

	var entries map[string]Entry
	if err := json.Unmarshal([]byte(text[start:end+1]), &entries); err != nil {
		return nil, Errorf(EINVALID, "malformed JSON object in model response: %s", err)
	}
	return entries, nil
}
