package handler

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/modals"
	"github.com/iliyamo/car-rental-admin/internal/model"
	"github.com/iliyamo/car-rental-admin/internal/service"
)

// Stores groups the repositories behind the console pages.
type Stores struct {
	Cars      Store[model.Car]
	Customers Store[model.Customer]
	Rentals   Store[model.Rental]
	Feedbacks Store[model.Feedback]
}

// Console holds one page handler per entity.
type Console struct {
	Cars      *EntityHandler[model.Car]
	Customers *EntityHandler[model.Customer]
	Rentals   *EntityHandler[model.Rental]
	Feedbacks *EntityHandler[model.Feedback]
}

func NewConsole(s Stores, audit service.Auditor, log *slog.Logger) *Console {
	return &Console{
		Feedbacks: NewEntityHandler(Entity[model.Feedback]{
			Name:     "feedback",
			Resource: "feedbacks",
			Title:    "Feedback",
			Columns:  []string{"ID", "Customer", "Rental", "Rating", "Comments"},
			Row: func(f model.Feedback) []string {
				return []string{id(f.ID), id(f.CustomerID), id(f.RentalID), strconv.Itoa(f.Rating), f.Comments}
			},
			ID:      func(f model.Feedback) uint64 { return f.ID },
			Modal:   modals.Feedback(),
			Sources: []form.ReferenceSource{modals.CustomerSource(s.Customers), modals.RentalSource(s.Rentals)},
		}, s.Feedbacks, audit, log),

		Rentals: NewEntityHandler(Entity[model.Rental]{
			Name:     "rental",
			Resource: "rentals",
			Title:    "Rentals",
			Columns:  []string{"ID", "Car", "Customer", "Start", "End", "Total"},
			Row: func(r model.Rental) []string {
				return []string{id(r.ID), id(r.CarID), id(r.CustomerID), r.StartDate, r.EndDate, fmt.Sprintf("%.2f", r.TotalPrice)}
			},
			ID:      func(r model.Rental) uint64 { return r.ID },
			Modal:   modals.Rental(),
			Sources: []form.ReferenceSource{modals.CarSource(s.Cars), modals.CustomerSource(s.Customers)},
		}, s.Rentals, audit, log),

		Customers: NewEntityHandler(Entity[model.Customer]{
			Name:     "customer",
			Resource: "customers",
			Title:    "Customers",
			Columns:  []string{"ID", "Name", "Email", "Phone"},
			Row: func(c model.Customer) []string {
				return []string{id(c.ID), c.FullName(), c.Email, c.PhoneNumber}
			},
			ID:    func(c model.Customer) uint64 { return c.ID },
			Modal: modals.Customer(),
		}, s.Customers, audit, log),

		Cars: NewEntityHandler(Entity[model.Car]{
			Name:     "car",
			Resource: "cars",
			Title:    "Cars",
			Columns:  []string{"ID", "Make", "Model", "Year", "Plate", "Color", "Transmission"},
			Row: func(c model.Car) []string {
				return []string{id(c.ID), c.Make, c.Model, strconv.Itoa(c.Year), c.LicensePlate, c.Color, c.Transmission}
			},
			ID:    func(c model.Car) uint64 { return c.ID },
			Modal: modals.Car(),
		}, s.Cars, audit, log),
	}
}

func id(n uint64) string { return strconv.FormatUint(n, 10) }
