package form

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GenericError is the only message a failed submission ever shows.
const GenericError = "Error"

// IDField is the hidden key carrying the record id through the form.
const IDField = "id"

// Schema converts between a record and its form values.
type Schema[T any] struct {
	Encode func(T) Values
	Decode func(Values) (T, error)
}

// Callbacks are supplied by the parent view.  OnHide closes the modal and
// Refresh makes the parent refetch its list.
type Callbacks struct {
	OnHide  func()
	Refresh func()
}

// SaveFunc persists a decoded record.  Edit modals pass an update call and
// create modals a create call.
type SaveFunc[T any] func(ctx context.Context, rec *T) error

// FieldView is a field ready for rendering.
type FieldView struct {
	Field
	Value   string
	Options []Option
	Error   string
}

// View is everything a template needs to draw the modal.
type View struct {
	Visible bool
	Title   string
	ID      string // empty when creating
	Fields  []FieldView
	Alert   string
}

// Editing reports whether the view edits an existing record.
func (v View) Editing() bool { return v.ID != "" && v.ID != SentinelValue }

// Result is the outcome of Submit.  On failure Values are the values that
// were submitted, untouched, so the form can be redrawn as the user left it.
type Result[T any] struct {
	Closed bool
	Saved  *T
	Values Values
	Errors Errors
	Alert  string
	Err    error
}

// Modal is the generic edit/create dialog for records of type T.  Title is
// the entity noun; the view prefixes it with "Edit" or "Create".
type Modal[T any] struct {
	Title     string
	Fields    []Field
	Schema    Schema[T]
	validator *Validator
}

// New builds a modal with its own validator.
func New[T any](title string, schema Schema[T], fields ...Field) *Modal[T] {
	return &Modal[T]{Title: title, Fields: fields, Schema: schema, validator: NewValidator()}
}

// Open returns the initial values of the modal: the record's values when
// editing, blank controls (selects at the sentinel) when record is nil.
func (m *Modal[T]) Open(record *T) Values {
	if record != nil {
		return m.Schema.Encode(*record)
	}
	vals := Values{}
	for _, f := range m.Fields {
		if f.Kind == KindSelect {
			vals[f.Name] = SentinelValue
		} else {
			vals[f.Name] = ""
		}
	}
	return vals
}

// Render draws the modal.  A hidden modal carries no fields.
func (m *Modal[T]) Render(visible bool, vals Values, refs References, errs Errors) View {
	v := View{Visible: visible, Title: "Create " + m.Title, ID: vals[IDField]}
	if v.Editing() {
		v.Title = "Edit " + m.Title
	}
	if !visible {
		return v
	}
	v.Fields = make([]FieldView, 0, len(m.Fields))
	for _, f := range m.Fields {
		fv := FieldView{Field: f, Value: vals[f.Name], Error: errs[f.Name]}
		if f.Kind == KindSelect {
			fv.Options = refs[f.Name]
			if len(fv.Options) == 0 {
				fv.Options = SelectOptions[Option](sentinelFor(f), nil, nil)
			}
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// Validate runs the static rules of every field.
func (m *Modal[T]) Validate(vals Values) Errors {
	return m.validator.Validate(m.Fields, vals)
}

// Submit validates vals, decodes them and hands the record to save.  Only a
// successful save closes the modal and refreshes the parent, each callback
// exactly once and in that order.
func (m *Modal[T]) Submit(ctx context.Context, vals Values, save SaveFunc[T], cb Callbacks) Result[T] {
	if errs := m.Validate(vals); len(errs) > 0 {
		return Result[T]{Values: vals, Errors: errs}
	}
	rec, err := m.Schema.Decode(vals.Clone())
	if err != nil {
		return Result[T]{Values: vals, Alert: GenericError, Err: fmt.Errorf("decode form: %w", err)}
	}
	if err := save(ctx, &rec); err != nil {
		return Result[T]{Values: vals, Alert: GenericError, Err: err}
	}
	if cb.OnHide != nil {
		cb.OnHide()
	}
	if cb.Refresh != nil {
		cb.Refresh()
	}
	return Result[T]{Closed: true, Saved: &rec, Values: vals}
}

func sentinelFor(f Field) string {
	return "Select " + strings.ToLower(f.Label) + "..."
}

// ParseUint reads an unsigned integer value; blank reads as 0.
func ParseUint(vals Values, key string) (uint64, error) {
	s := strings.TrimSpace(vals[key])
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// ParseInt reads a whole number value; blank reads as 0.
func ParseInt(vals Values, key string) (int, error) {
	s := strings.TrimSpace(vals[key])
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// ParseFloat reads a decimal value; blank reads as 0.
func ParseFloat(vals Values, key string) (float64, error) {
	s := strings.TrimSpace(vals[key])
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%s: %q is not a finite number", key, s)
	}
	return n, nil
}

// FormatUint and FormatFloat are the encoding counterparts used by schemas.
func FormatUint(n uint64) string { return strconv.FormatUint(n, 10) }

func FormatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
