package model

// Customer is a person who rents cars.  Customers are referenced by
// rentals and feedback through CustomerID.
type Customer struct {
	ID          uint64 `json:"id"`          // customers.id
	FirstName   string `json:"firstName"`   // customers.first_name
	LastName    string `json:"lastName"`    // customers.last_name
	Email       string `json:"email"`       // customers.email
	PhoneNumber string `json:"phoneNumber"` // customers.phone_number
}

// FullName joins first and last name the way select boxes display a customer.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
