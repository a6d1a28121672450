// Package form implements the entity edit modal shared by every record type
// of the console: field definitions with declarative rules, select options
// fed by reference lists, validation and the submit flow.
//
// A Modal is a pure function of (visibility, values, reference lists,
// errors) to a View; the only side effects happen in Submit, through the
// save function and the two callbacks handed to it.
package form

// Kind selects the control a field renders as.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindEmail    Kind = "email"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
)

// Bound is a numeric limit and the message shown when it is crossed.
type Bound struct {
	Value   float64
	Message string
}

// Rules are the static checks applied to a field on submit.  An empty
// message disables the corresponding check.
type Rules struct {
	Required    string // value must be non-blank
	NotSentinel string // select must not stay at SentinelValue
	Email       string // value must be an email address
	Integer     string // number must be whole
	Min         *Bound
	Max         *Bound
}

// Field describes one control of a modal.  Name is both the form key and
// the key used by the record's Schema.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	Rules Rules
}

// Values are the raw control values keyed by field name, exactly as the
// browser posts them.
type Values map[string]string

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Errors maps a field name to the message rendered beneath its control.
type Errors map[string]string
