package rawjson

import "strings"

// NameVariant tags which upstream shape a person name arrived in.
type NameVariant int

const (
	NameMissing NameVariant = iota
	NameString              // "name": "Ana Souza"
	NameParts               // "name": {"firstName": "Ana", "lastName": "Souza"}
)

// Name is the union of the shapes the upstream uses for person names: a
// plain string, or an object carrying first/last parts under one of two
// casing conventions. Decoding matches each variant explicitly instead of
// runtime type-sniffing at the call site.
type Name struct {
	Variant NameVariant
	Full    string
	First   string
	Last    string
}

// DecodeName resolves the name union from a raw record, trying the given
// candidate keys in order.
func DecodeName(m map[string]any, keys ...string) Name {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t == "" {
				continue
			}
			return Name{Variant: NameString, Full: t}
		case map[string]any:
			first := Str(t, "", "firstName", "first_name", "first", "given")
			last := Str(t, "", "lastName", "last_name", "last", "family")
			if first == "" && last == "" {
				continue
			}
			return Name{
				Variant: NameParts,
				First:   first,
				Last:    last,
				Full:    strings.TrimSpace(first + " " + last),
			}
		}
	}
	return Name{}
}

// Display returns the renderable full name, or fallback when the name is
// missing entirely.
func (n Name) Display(fallback string) string {
	if n.Variant == NameMissing || n.Full == "" {
		return fallback
	}
	return n.Full
}
