package clinicscrape

import "strings"

// FormatRecords formats records for terminal display.
// Uses the name if available, falls back to the URL. Empty fields are
// omitted. Records are separated by blank lines.
func FormatRecords(records []*ClinicRecord) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		header := r.Name
		if header == "" {
			header = r.URL
		}

		var b strings.Builder
		b.WriteString("## " + header)
		writeField(&b, "URL", r.URL)
		writeField(&b, "Phone", r.Phone)
		address := r.Address
		if address != "" && r.AddressConfidence == ConfidenceLow {
			address += " (low confidence)"
		}
		writeField(&b, "Address", address)
		writeField(&b, "Services", strings.Join(r.Services, ", "))
		writeField(&b, "Description", r.Description)
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("\n" + label + ": " + value)
}
