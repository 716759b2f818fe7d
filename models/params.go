package models

// Param is one key/value entry of a request parameter mapping.
type Param struct {
	Key   string
	Value Value
}

// Params is an ordered parameter mapping. Insertion order is preserved and
// determines the conjunct order of any WHERE clause built from it, so a
// plain map cannot serve here.
type Params []Param

func (p Params) Get(key string) (Value, bool) {
	for _, entry := range p {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return Value{}, false
}

// Set replaces the value of an existing key in place, or appends a new
// entry. Replacing in place keeps the key at its original position, the
// same way spreading one object over another would.
func (p *Params) Set(key string, v Value) {
	for i, entry := range *p {
		if entry.Key == key {
			(*p)[i].Value = v
			return
		}
	}

	*p = append(*p, Param{Key: key, Value: v})
}

// Merge lays other over p; on key collision the later value wins while the
// key keeps its original position.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p), len(p)+len(other))
	copy(merged, p)

	for _, entry := range other {
		merged.Set(entry.Key, entry.Value)
	}

	return merged
}

// Without returns a copy of p with the given keys removed.
func (p Params) Without(keys ...string) Params {
	skip := make(map[string]bool, len(keys))
	for _, key := range keys {
		skip[key] = true
	}

	filtered := make(Params, 0, len(p))
	for _, entry := range p {
		if skip[entry.Key] {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered
}

func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, entry := range p {
		keys = append(keys, entry.Key)
	}

	return keys
}
