package modals

import (
	"fmt"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// Rental returns the rental modal; it needs CarSource and CustomerSource.
func Rental() *form.Modal[model.Rental] {
	return form.New("Rental", form.Schema[model.Rental]{
		Encode: func(r model.Rental) form.Values {
			return form.Values{
				form.IDField: form.FormatUint(r.ID),
				"carId":      form.FormatUint(r.CarID),
				"customerId": form.FormatUint(r.CustomerID),
				"startDate":  r.StartDate,
				"endDate":    r.EndDate,
				"totalPrice": form.FormatFloat(r.TotalPrice),
			}
		},
		Decode: func(v form.Values) (model.Rental, error) {
			r := model.Rental{StartDate: v["startDate"], EndDate: v["endDate"]}
			var err error
			if r.ID, err = form.ParseUint(v, form.IDField); err != nil {
				return r, err
			}
			if r.CarID, err = form.ParseUint(v, "carId"); err != nil {
				return r, err
			}
			if r.CustomerID, err = form.ParseUint(v, "customerId"); err != nil {
				return r, err
			}
			r.TotalPrice, err = form.ParseFloat(v, "totalPrice")
			return r, err
		},
	},
		form.Field{Name: "carId", Label: "Car", Kind: form.KindSelect, Rules: form.Rules{
			Required: "Select car", NotSentinel: "Select car",
		}},
		form.Field{Name: "customerId", Label: "Customer", Kind: form.KindSelect, Rules: form.Rules{
			Required: "Select customer", NotSentinel: "Select customer",
		}},
		form.Field{Name: "startDate", Label: "Start date", Kind: form.KindDate, Rules: form.Rules{Required: "Enter start date"}},
		form.Field{Name: "endDate", Label: "End date", Kind: form.KindDate, Rules: form.Rules{Required: "Enter end date"}},
		form.Field{Name: "totalPrice", Label: "Total price", Kind: form.KindNumber, Rules: form.Rules{
			Required: "Enter total price",
			Min:      &form.Bound{Value: 0, Message: "Total price cannot be negative"},
		}},
	)
}

// CarSource lists cars as "Make Model (PLATE)".
func CarSource(cars Lister[model.Car]) form.ReferenceSource {
	return form.Source("carId", "Select car...", cars.List, func(c model.Car) form.Option {
		return form.Option{Value: form.FormatUint(c.ID), Label: fmt.Sprintf("%s %s (%s)", c.Make, c.Model, c.LicensePlate)}
	})
}
