package csvfile

// Part is a table together with the schema it was exported with.
type Part struct {
	Table  *Table
	Schema Schema
}

// Combine concatenates tables of different layouts into one table in the
// UniversalSchema layout. Each part's group column is renamed to
// UniversalID; the header is the ordered union of all headers (compared
// case-insensitively) and cells a part does not have are left empty. A
// part without a group column gets UnknownGroup.
func Combine(parts ...Part) *Table {
	out := &Table{Header: []string{}}
	index := map[string]int{}
	add := func(name string) int {
		key := normalize(name)
		if i, ok := index[key]; ok {
			return i
		}
		index[key] = len(out.Header)
		out.Header = append(out.Header, name)
		return index[key]
	}

	type mapping struct {
		to    []int
		group int
	}
	mappings := make([]mapping, len(parts))
	for p, part := range parts {
		group := part.Table.Column(part.Schema.Group)
		m := mapping{to: make([]int, len(part.Table.Header)), group: group}
		for i, h := range part.Table.Header {
			if i == group {
				m.to[i] = add(UniversalID)
				continue
			}
			m.to[i] = add(h)
		}
		if group < 0 {
			add(UniversalID)
		}
		mappings[p] = m
	}

	universal := index[normalize(UniversalID)]
	for p, part := range parts {
		m := mappings[p]
		for _, row := range part.Table.Rows {
			combined := make([]string, len(out.Header))
			for i, v := range row {
				if i < len(m.to) {
					combined[m.to[i]] = v
				}
			}
			if m.group < 0 {
				combined[universal] = UnknownGroup
			}
			out.Rows = append(out.Rows, combined)
		}
	}
	return out
}
