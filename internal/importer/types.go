package importer

import (
	"strings"
	"time"
)

// PipeList decodes a pipe-separated CSV cell, e.g. "pool|gym|garden".
// Exports sometimes wrap the cell in an extra pair of quotes that the CSV
// reader does not consume; one surrounding pair is stripped before the split.
type PipeList []string

func (p *PipeList) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	if value == "" {
		*p = nil
		return nil
	}

	parts := strings.Split(value, "|")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	*p = items
	return nil
}

func (p PipeList) MarshalCSV() (string, error) {
	return strings.Join(p, "|"), nil
}

// FlexBool is true only for the literal "true", case-insensitively; every
// other value, including blanks, reads as false.
type FlexBool bool

func (b *FlexBool) UnmarshalCSV(value string) error {
	*b = FlexBool(strings.EqualFold(strings.TrimSpace(value), "true"))
	return nil
}

func (b FlexBool) MarshalCSV() (string, error) {
	if b {
		return "true", nil
	}
	return "false", nil
}

// FlexDate accepts the export's plain date layout with an RFC 3339 fallback.
// Blank cells decode to the zero time.
type FlexDate struct {
	time.Time
}

func (d *FlexDate) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d FlexDate) MarshalCSV() (string, error) {
	if d.Time.IsZero() {
		return "", nil
	}
	return d.Time.Format("2006-01-02"), nil
}
