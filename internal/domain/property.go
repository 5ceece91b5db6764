package domain

// Owner is the host of a property as reported by the backend.
type Owner struct {
	ID   int64
	Name string
}

// Property represents a rental listing. Bookings carries the full booking
// list as of the last fetch; it is the sole input to availability.
type Property struct {
	ID            int64
	Owner         Owner
	Title         string
	LocationName  string
	PricePerNight Money
	Bookings      []Booking
}

// BookedProperty is one entry of a guest's grouped booking view: a property
// together with only that guest's bookings on it. The per-property view is a
// flat list; this grouped shape exists only on the guest side.
type BookedProperty struct {
	Property Property
	Bookings []Booking
}
