// Package modals defines the edit modal of each car-rental entity: its
// fields, rules, record schema and the reference lists its selects need.
package modals

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// Lister is satisfied by the repositories' List methods.
type Lister[E any] interface {
	List(ctx context.Context) ([]E, error)
}

// Feedback returns the feedback modal.  Its selects are fed by CustomerSource
// and RentalSource.
func Feedback() *form.Modal[model.Feedback] {
	return form.New("Feedback", form.Schema[model.Feedback]{
		Encode: encodeFeedback,
		Decode: decodeFeedback,
	},
		form.Field{Name: "customerId", Label: "Customer", Kind: form.KindSelect, Rules: form.Rules{
			Required: "Select customer", NotSentinel: "Select customer",
		}},
		form.Field{Name: "rentalId", Label: "Rental", Kind: form.KindSelect, Rules: form.Rules{
			Required: "Select rental", NotSentinel: "Select rental",
		}},
		form.Field{Name: "rating", Label: "Rating", Kind: form.KindNumber, Rules: form.Rules{
			Required: "Enter rating",
			Integer:  "Rating must be a whole number",
			Min:      &form.Bound{Value: 1, Message: "Minimum rating is 1"},
			Max:      &form.Bound{Value: 5, Message: "Maximum rating is 5"},
		}},
		form.Field{Name: "comments", Label: "Comments", Kind: form.KindTextarea, Rules: form.Rules{
			Required: "Enter comments",
		}},
	)
}

func encodeFeedback(f model.Feedback) form.Values {
	return form.Values{
		form.IDField: form.FormatUint(f.ID),
		"customerId": form.FormatUint(f.CustomerID),
		"rentalId":   form.FormatUint(f.RentalID),
		"rating":     strconv.Itoa(f.Rating),
		"comments":   f.Comments,
	}
}

func decodeFeedback(v form.Values) (model.Feedback, error) {
	var f model.Feedback
	var err error
	if f.ID, err = form.ParseUint(v, form.IDField); err != nil {
		return f, err
	}
	if f.CustomerID, err = form.ParseUint(v, "customerId"); err != nil {
		return f, err
	}
	if f.RentalID, err = form.ParseUint(v, "rentalId"); err != nil {
		return f, err
	}
	if f.Rating, err = form.ParseInt(v, "rating"); err != nil {
		return f, err
	}
	f.Comments = v["comments"]
	return f, nil
}

// CustomerSource lists customers as "First Last".
func CustomerSource(customers Lister[model.Customer]) form.ReferenceSource {
	return form.Source("customerId", "Select customer...", customers.List, func(c model.Customer) form.Option {
		return form.Option{Value: form.FormatUint(c.ID), Label: c.FullName()}
	})
}

// RentalSource lists rentals as "Rental ID: N".
func RentalSource(rentals Lister[model.Rental]) form.ReferenceSource {
	return form.Source("rentalId", "Select rental...", rentals.List, func(r model.Rental) form.Option {
		return form.Option{Value: form.FormatUint(r.ID), Label: fmt.Sprintf("Rental ID: %d", r.ID)}
	})
}
