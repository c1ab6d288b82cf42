package catalogue

import "fmt"

// Entry is one known ingredient. Names holds every synonym the matcher
// should look for; Names[0] is the canonical display name.
type Entry struct {
	Names  []string `json:"names"`
	Reason string   `json:"reason"`
}

// Catalogue is the full ingredient dictionary. Loaded once, read-only
// for the lifetime of the process (reloads swap the whole value).
type Catalogue struct {
	Haram    []Entry `json:"haram_ingredients"`
	Mushbooh []Entry `json:"mushbooh_ingredients"`
}

type SchemaError struct {
	Category string
	Index    int
	Field    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalogue: %s entry %d missing %s", e.Category, e.Index, e.Field)
}

// Validate rejects entries without a synonym list or a reason. The
// catalogue is the authority the whole pipeline depends on, so a bad
// entry fails the load rather than surfacing mid-classification.
func (c *Catalogue) Validate() error {
	for i, e := range c.Haram {
		if err := checkEntry("haram", i, e); err != nil {
			return err
		}
	}
	for i, e := range c.Mushbooh {
		if err := checkEntry("mushbooh", i, e); err != nil {
			return err
		}
	}
	return nil
}

func checkEntry(category string, i int, e Entry) error {
	if len(e.Names) == 0 {
		return &SchemaError{Category: category, Index: i, Field: "names"}
	}
	if e.Reason == "" {
		return &SchemaError{Category: category, Index: i, Field: "reason"}
	}
	return nil
}

func (c *Catalogue) Size() int {
	return len(c.Haram) + len(c.Mushbooh)
}
