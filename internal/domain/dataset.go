package domain

// Dataset is a named result of one collection step. Records holds every
// normalized record; Single marks datasets that hold exactly one record and
// render as an object rather than a list.
type Dataset struct {
	Name    string
	Records []any
	Single  bool
}

// Value returns the dataset's rendering value: the lone record for a single
// dataset, the record list otherwise.
func (d Dataset) Value() any {
	if d.Single {
		if len(d.Records) == 0 {
			return nil
		}
		return d.Records[0]
	}
	if d.Records == nil {
		return []any{}
	}
	return d.Records
}

// ListDataset builds a dataset from a record slice.
func ListDataset[T any](name string, records []T) Dataset {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return Dataset{Name: name, Records: out}
}

// SingleDataset builds a dataset holding one record.
func SingleDataset(name string, record any) Dataset {
	return Dataset{Name: name, Records: []any{record}, Single: true}
}
