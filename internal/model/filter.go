package model

import "sort"

// FilterSet maps a question id to the answer values a submission must
// have given for that question to be counted. An empty allow-list means
// no restriction for that question. The analytics engine never mutates
// a filter set.
type FilterSet map[string][]string

// Canonical returns the filter set flattened into a deterministic
// "qid:v1,v2;qid:v1" form, used as cache key material. Empty allow-lists
// are dropped since they don't restrict anything.
func (f FilterSet) Canonical() string {
	ids := make([]string, 0, len(f))
	for id, allowed := range f {
		if len(allowed) == 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ";"
		}
		values := append([]string(nil), f[id]...)
		sort.Strings(values)
		out += id + ":"
		for j, v := range values {
			if j > 0 {
				out += ","
			}
			out += v
		}
	}
	return out
}

// Empty reports whether no filter in the set restricts anything
func (f FilterSet) Empty() bool {
	for _, allowed := range f {
		if len(allowed) > 0 {
			return false
		}
	}
	return true
}
