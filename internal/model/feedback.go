package model

// Feedback is a customer's rating of a finished rental.
//
// Fields:
//
//	ID         – primary key identifier.
//	CustomerID – customer who left the feedback.
//	RentalID   – rental the feedback is about.
//	Rating     – score between 1 and 5.
//	Comments   – free text.
type Feedback struct {
	ID         uint64 `json:"id"`         // feedbacks.id
	CustomerID uint64 `json:"customerId"` // feedbacks.customer_id
	RentalID   uint64 `json:"rentalId"`   // feedbacks.rental_id
	Rating     int    `json:"rating"`     // feedbacks.rating
	Comments   string `json:"comments"`   // feedbacks.comments
}
