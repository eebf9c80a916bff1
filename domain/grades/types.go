package grades

// Row is one student line of the input table
type Row struct {
	Student string
	Grades  []int
}

// Table is the parsed grade sheet. Every row carries exactly one grade per
// subject, in subject order.
type Table struct {
	Subjects []string
	Rows     []Row
}

// NewTable creates an empty table for the given subject labels
func NewTable(subjects []string) *Table {
	return &Table{Subjects: subjects}
}

// AddRow appends a student row. The caller is responsible for the column
// count matching Subjects.
func (t *Table) AddRow(student string, grades []int) {
	t.Rows = append(t.Rows, Row{Student: student, Grades: grades})
}

// StudentCount returns the number of data rows
func (t *Table) StudentCount() int {
	return len(t.Rows)
}

// Column returns the grades recorded for the subject at index i
func (t *Table) Column(i int) []int {
	column := make([]int, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row.Grades) {
			column = append(column, row.Grades[i])
		}
	}
	return column
}

// Entry is a single key/value pair of an OrderedMap
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a string-keyed map that remembers insertion order.
// Setting an existing key replaces its value in place.
type OrderedMap[V any] struct {
	entries []Entry[V]
	index   map[string]int
}

// NewOrderedMap creates an empty ordered map
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{index: make(map[string]int)}
}

// Set inserts or updates a key
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[V]{Key: key, Value: value})
}

// Get looks up a key
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.entries[i].Value, true
}

// Len returns the number of distinct keys
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order
func (m *OrderedMap[V]) Entries() []Entry[V] {
	if m == nil {
		return nil
	}
	out := make([]Entry[V], len(m.entries))
	copy(out, m.entries)
	return out
}

// AverageMap maps student name to mean grade
type AverageMap = OrderedMap[float64]

// HighestMap maps subject label to the best grade seen for it
type HighestMap = OrderedMap[int]

// NewAverageMap creates an empty AverageMap
func NewAverageMap() *AverageMap {
	return NewOrderedMap[float64]()
}

// NewHighestMap creates an empty HighestMap
func NewHighestMap() *HighestMap {
	return NewOrderedMap[int]()
}
