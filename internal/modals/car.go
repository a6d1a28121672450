package modals

import (
	"strconv"
	"strings"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

func Car() *form.Modal[model.Car] {
	return form.New("Car", form.Schema[model.Car]{
		Encode: encodeCar,
		Decode: decodeCar,
	},
		text("make", "Make"),
		text("model", "Model"),
		form.Field{Name: "year", Label: "Year", Kind: form.KindNumber, Rules: form.Rules{
			Required: "Enter year",
			Integer:  "Year must be a whole number",
			Min:      &form.Bound{Value: 1900, Message: "Minimum year is 1900"},
			Max:      &form.Bound{Value: 2100, Message: "Maximum year is 2100"},
		}},
		form.Field{Name: "vin", Label: "VIN", Kind: form.KindText, Rules: form.Rules{Required: "Enter VIN"}},
		text("licensePlate", "License plate"),
		text("color", "Color"),
		text("transmission", "Transmission"),
		form.Field{Name: "locationX", Label: "Location X", Kind: form.KindNumber, Rules: form.Rules{Required: "Enter location X"}},
		form.Field{Name: "locationY", Label: "Location Y", Kind: form.KindNumber, Rules: form.Rules{Required: "Enter location Y"}},
	)
}

// text is a required single-line input whose message is "Enter <label>".
func text(name, label string) form.Field {
	return form.Field{Name: name, Label: label, Kind: form.KindText, Rules: form.Rules{Required: "Enter " + strings.ToLower(label)}}
}

func encodeCar(c model.Car) form.Values {
	return form.Values{
		form.IDField:   form.FormatUint(c.ID),
		"make":         c.Make,
		"model":        c.Model,
		"year":         strconv.Itoa(c.Year),
		"vin":          c.VIN,
		"licensePlate": c.LicensePlate,
		"color":        c.Color,
		"transmission": c.Transmission,
		"locationX":    form.FormatFloat(c.LocationX),
		"locationY":    form.FormatFloat(c.LocationY),
	}
}

func decodeCar(v form.Values) (model.Car, error) {
	c := model.Car{
		Make:         v["make"],
		Model:        v["model"],
		VIN:          v["vin"],
		LicensePlate: v["licensePlate"],
		Color:        v["color"],
		Transmission: v["transmission"],
	}
	var err error
	if c.ID, err = form.ParseUint(v, form.IDField); err != nil {
		return c, err
	}
	if c.Year, err = form.ParseInt(v, "year"); err != nil {
		return c, err
	}
	if c.LocationX, err = form.ParseFloat(v, "locationX"); err != nil {
		return c, err
	}
	c.LocationY, err = form.ParseFloat(v, "locationY")
	return c, err
}
