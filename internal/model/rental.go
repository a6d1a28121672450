package model

// Rental records a car hired by a customer for a date range.  Dates are
// kept as the API sends them (YYYY-MM-DD) because the console only
// round-trips them through date inputs.
type Rental struct {
	ID         uint64  `json:"id"`         // rentals.id
	CarID      uint64  `json:"carId"`      // rentals.car_id
	CustomerID uint64  `json:"customerId"` // rentals.customer_id
	StartDate  string  `json:"startDate"`  // rentals.start_date
	EndDate    string  `json:"endDate"`    // rentals.end_date
	TotalPrice float64 `json:"totalPrice"` // rentals.total_price
}
