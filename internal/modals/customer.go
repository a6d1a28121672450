package modals

import (
	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// Customer has no selects and therefore no reference sources.
func Customer() *form.Modal[model.Customer] {
	return form.New("Customer", form.Schema[model.Customer]{
		Encode: func(c model.Customer) form.Values {
			return form.Values{
				form.IDField:  form.FormatUint(c.ID),
				"firstName":   c.FirstName,
				"lastName":    c.LastName,
				"email":       c.Email,
				"phoneNumber": c.PhoneNumber,
			}
		},
		Decode: func(v form.Values) (model.Customer, error) {
			id, err := form.ParseUint(v, form.IDField)
			return model.Customer{
				ID:          id,
				FirstName:   v["firstName"],
				LastName:    v["lastName"],
				Email:       v["email"],
				PhoneNumber: v["phoneNumber"],
			}, err
		},
	},
		form.Field{Name: "firstName", Label: "First name", Kind: form.KindText, Rules: form.Rules{Required: "Enter first name"}},
		form.Field{Name: "lastName", Label: "Last name", Kind: form.KindText, Rules: form.Rules{Required: "Enter last name"}},
		form.Field{Name: "email", Label: "Email", Kind: form.KindEmail, Rules: form.Rules{
			Required: "Enter email", Email: "Enter a valid email",
		}},
		form.Field{Name: "phoneNumber", Label: "Phone number", Kind: form.KindText, Rules: form.Rules{Required: "Enter phone number"}},
	)
}
