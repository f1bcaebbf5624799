// SpecDocument persistence. The stored form keys sections by id, but section
// order is meaningful (filtering and export walk sections in source order),
// so marshaling writes the object in slice order and unmarshaling reads keys
// back in encounter order instead of going through a Go map.
package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// specDocumentHeader mirrors the scalar fields of the persisted format.
type specDocumentHeader struct {
	SpecName      string `json:"specName"`
	Title         string `json:"title"`
	ExtractedAt   string `json:"extractedAt"`
	TotalSections int    `json:"totalSections"`
	CoreSections  int    `json:"coreSections"`
}

// SectionByID returns the section with the given id, if present.
func (d *SpecDocument) SectionByID(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// MarshalJSON writes the persisted document format with sections as a JSON
// object in source order.
func (d *SpecDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	header, err := json.Marshal(specDocumentHeader{
		SpecName:      d.SpecName,
		Title:         d.Title,
		ExtractedAt:   d.ExtractedAt,
		TotalSections: d.TotalSections,
		CoreSections:  d.CoreSections,
	})
	if err != nil {
		return nil, err
	}
	// Splice the header fields in, then append the sections object.
	buf.Write(header[1 : len(header)-1])
	buf.WriteString(`,"sections":{`)

	for i, s := range d.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the persisted document format, preserving the order in
// which section keys appear in the stored object.
func (d *SpecDocument) UnmarshalJSON(data []byte) error {
	var header specDocumentHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	d.SpecName = header.SpecName
	d.Title = header.Title
	d.ExtractedAt = header.ExtractedAt
	d.TotalSections = header.TotalSections
	d.CoreSections = header.CoreSections
	d.Sections = nil

	// Second pass: walk tokens to find the sections object and decode each
	// entry in encounter order.
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		if key != "sections" {
			// Skip the value for this field.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}
		if _, err := dec.Token(); err != nil { // sections opening brace
			return err
		}
		for dec.More() {
			idTok, err := dec.Token()
			if err != nil {
				return err
			}
			id, ok := idTok.(string)
			if !ok {
				return fmt.Errorf("unexpected section key token %v", idTok)
			}
			var s Section
			if err := dec.Decode(&s); err != nil {
				return fmt.Errorf("decoding section %q: %w", id, err)
			}
			if s.ID == "" {
				s.ID = id
			}
			d.Sections = append(d.Sections, s)
		}
		if _, err := dec.Token(); err != nil { // sections closing brace
			return err
		}
	}
	return nil
}
