package form

import "context"

// SentinelValue is the value of the "Select X..." placeholder option.
const SentinelValue = "0"

// Option is one entry of a select control.
type Option struct {
	Value string
	Label string
}

// SelectOptions renders items as select options behind the sentinel
// placeholder.  The sentinel is always first, even for an empty or nil list.
func SelectOptions[E any](sentinel string, items []E, option func(E) Option) []Option {
	out := make([]Option, 0, len(items)+1)
	out = append(out, Option{Value: SentinelValue, Label: sentinel})
	for _, it := range items {
		out = append(out, option(it))
	}
	return out
}

// ReferenceSource fetches the list behind one foreign-key select.
type ReferenceSource struct {
	Field    string // name of the select field it feeds
	Sentinel string // placeholder label, e.g. "Select customer..."
	Load     func(ctx context.Context) ([]Option, error)
}

// Source adapts a typed list call (usually a repository's List) into a
// ReferenceSource.
func Source[E any](field, sentinel string, list func(context.Context) ([]E, error), option func(E) Option) ReferenceSource {
	return ReferenceSource{
		Field:    field,
		Sentinel: sentinel,
		Load: func(ctx context.Context) ([]Option, error) {
			items, err := list(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]Option, 0, len(items))
			for _, it := range items {
				out = append(out, option(it))
			}
			return out, nil
		},
	}
}
