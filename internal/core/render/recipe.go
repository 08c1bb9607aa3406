package render

import (
	"encoding/json"
)

// Recipe is a single untrusted recipe record. The backend guarantees no field,
// so every field decodes best-effort and a malformed value degrades to its
// zero value instead of failing the whole payload.
type Recipe struct {
	Title       string
	Description string
	Image       string
	Ingredients []string
	Steps       []string
	PrepMinutes *int
	CookMinutes *int
}

// UnmarshalJSON tolerates wrong-typed and missing fields.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Not an object at all; leave the recipe empty.
		return nil
	}

	r.Title = decodeString(fields["title"])
	r.Description = decodeString(fields["description"])
	r.Image = decodeString(fields["image"])
	r.Ingredients = decodeStringSlice(fields["ingredients"])
	r.Steps = decodeStringSlice(fields["steps"])
	r.PrepMinutes = decodeMinutes(fields["prep_minutes"])
	r.CookMinutes = decodeMinutes(fields["cook_minutes"])
	return nil
}

// ParseRecipes decodes a recipes list, dropping entries that are not objects.
// A nil or malformed list yields nil.
func ParseRecipes(raw json.RawMessage) []Recipe {
	if len(raw) == 0 {
		return nil
	}
	var recipes []Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return nil
	}
	return recipes
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeStringSlice(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func decodeMinutes(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	n := int(f)
	return &n
}
