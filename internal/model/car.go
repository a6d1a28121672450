package model

// Car is a vehicle in the rental fleet as served by the API.
//
// Fields:
//
//	ID           – primary key identifier.
//	Make, Model  – manufacturer and model name.
//	Year         – model year.
//	VIN          – vehicle identification number.
//	LicensePlate – registration plate, shown in select labels.
//	Color        – body colour.
//	Transmission – free text, e.g. "Automatic".
//	LocationX/Y  – last known parking coordinates.
type Car struct {
	ID           uint64  `json:"id"`           // cars.id
	Make         string  `json:"make"`         // cars.make
	Model        string  `json:"model"`        // cars.model
	Year         int     `json:"year"`         // cars.year
	VIN          string  `json:"vin"`          // cars.vin
	LicensePlate string  `json:"licensePlate"` // cars.license_plate
	Color        string  `json:"color"`        // cars.color
	Transmission string  `json:"transmission"` // cars.transmission
	LocationX    float64 `json:"locationX"`    // cars.location_x
	LocationY    float64 `json:"locationY"`    // cars.location_y
}
