package domain

// PriceBreakdown is the itemized cost of a stay. Derived on demand from the
// range and nightly rate, never stored.
type PriceBreakdown struct {
	Nights      int
	BaseTotal   Money
	CleaningFee Money
	ServiceFee  Money
	GrandTotal  Money
}
