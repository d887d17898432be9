package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MarshalJSON serializes the document with a stable key order: page groups
// ascending, kind groups in Kind declaration order, then metadata.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeEntry := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	for _, n := range d.PageNumbers() {
		if err := writeEntry(fmt.Sprintf("page_%d", n), d.Pages[n]); err != nil {
			return nil, err
		}
	}
	for _, k := range d.PresentKinds() {
		if err := writeEntry("type_"+k.String(), d.Kinds[k]); err != nil {
			return nil, err
		}
	}
	if err := writeEntry("metadata", d.Metadata); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a document from its serialized form. Unrecognized
// top-level keys are rejected.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Pages = make(map[int][]Fragment)
	d.Kinds = make(map[Kind][]Fragment)

	for key, value := range raw {
		switch {
		case key == "metadata":
			if err := json.Unmarshal(value, &d.Metadata); err != nil {
				return fmt.Errorf("metadata: %w", err)
			}
		case strings.HasPrefix(key, "page_"):
			n, err := strconv.Atoi(strings.TrimPrefix(key, "page_"))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid page key %q", key)
			}
			var frags []Fragment
			if err := json.Unmarshal(value, &frags); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			d.Pages[n] = frags
		case strings.HasPrefix(key, "type_"):
			k, err := ParseKind(strings.TrimPrefix(key, "type_"))
			if err != nil {
				return fmt.Errorf("invalid type key %q", key)
			}
			var frags []Fragment
			if err := json.Unmarshal(value, &frags); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			d.Kinds[k] = frags
		default:
			return fmt.Errorf("unrecognized document key %q", key)
		}
	}

	return nil
}
