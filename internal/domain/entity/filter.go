package entity

import "github.com/shopspring/decimal"

// DoctorFilter narrows a doctor listing. Nil or empty fields are ignored;
// the rest are combined with AND.
type DoctorFilter struct {
	Specialization string
	MinRating      *float64
	MaxPrice       *decimal.Decimal
	AvailableDay   string // weekday name, e.g. "Monday"
}

// Matches reports whether d passes every set criterion.
func (f DoctorFilter) Matches(d *Doctor) bool {
	if f.Specialization != "" && d.Specialization != f.Specialization {
		return false
	}
	if f.MinRating != nil && d.Rating < *f.MinRating {
		return false
	}
	if f.MaxPrice != nil && d.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.AvailableDay != "" && !d.AvailableOn(f.AvailableDay) {
		return false
	}
	return true
}

// ResourceFilter narrows a resource listing.
type ResourceFilter struct {
	Type          string
	Department    string
	AvailableOnly bool
}

func (f ResourceFilter) Matches(r *MedicalResource) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if f.AvailableOnly && !r.IsAvailable {
		return false
	}
	return true
}
