// Package region defines the geographic unit the engine scores: a named
// region with installed renewable capacity per resource category and the
// geography flags the recommendation engine consults.
package region

import (
	"fmt"

	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// Category identifies one of the four scored resource categories.  Large
// hydro is tracked as capacity but deliberately excluded from scoring; it is
// carried as a reference figure only.
type Category int

const (
	Solar Category = iota
	Wind
	SmallHydro
	Bio
)

// NumCategories is the count of scored categories.
const NumCategories = 4

// AllCategories returns the scored categories in their canonical order.
// The order is load-bearing: advisory lists and weight vectors follow it.
func AllCategories() [NumCategories]Category {
	return [NumCategories]Category{Solar, Wind, SmallHydro, Bio}
}

func (c Category) String() string {
	switch c {
	case Solar:
		return "solar"
	case Wind:
		return "wind"
	case SmallHydro:
		return "small_hydro"
	case Bio:
		return "bio"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Display returns a human-readable category label for advisory text.
func (c Category) Display() string {
	switch c {
	case Solar:
		return "Solar"
	case Wind:
		return "Wind"
	case SmallHydro:
		return "Small Hydro"
	case Bio:
		return "Bio Power"
	default:
		return c.String()
	}
}

// Geography carries the flags the recommendation engine uses to frame
// category rationales.  They play no role in scoring.
type Geography struct {
	// Dominant is a free-text description of the prevailing terrain,
	// e.g. "Coastal", "Arid", "Himalayan", "Mixed".
	Dominant string `json:"dominant"`

	Coastal     bool `json:"coastal"`
	AridDesert  bool `json:"arid_desert"`
	Mountain    bool `json:"mountain"`
	HighBiomass bool `json:"high_biomass"`
}

// Region is one row of the capacity dataset: a named geographic unit with
// installed capacity in megawatts for each scored category plus the unscored
// large-hydro reference figure.
type Region struct {
	Name string `json:"name"`

	SolarMW      float64 `json:"solar_mw"`
	WindMW       float64 `json:"wind_mw"`
	SmallHydroMW float64 `json:"small_hydro_mw"`
	BioMW        float64 `json:"bio_power_mw"`
	LargeHydroMW float64 `json:"large_hydro_mw"`

	Geography Geography `json:"geography"`
}

// Capacity returns the installed capacity for a scored category.
func (r Region) Capacity(c Category) float64 {
	switch c {
	case Solar:
		return r.SolarMW
	case Wind:
		return r.WindMW
	case SmallHydro:
		return r.SmallHydroMW
	case Bio:
		return r.BioMW
	default:
		return 0
	}
}

// WithCapacity returns a copy of the region with the given category set.
// The receiver is not mutated; scenario evaluation relies on this.
func (r Region) WithCapacity(c Category, mw float64) Region {
	switch c {
	case Solar:
		r.SolarMW = mw
	case Wind:
		r.WindMW = mw
	case SmallHydro:
		r.SmallHydroMW = mw
	case Bio:
		r.BioMW = mw
	}
	return r
}

// TotalMW is the sum of all five capacity figures, large hydro included.
func (r Region) TotalMW() float64 {
	return r.SolarMW + r.WindMW + r.SmallHydroMW + r.BioMW + r.LargeHydroMW
}

// ValidateSet checks a dataset for the invariants every downstream component
// assumes: at least one region, unique names, and non-negative capacities.
func ValidateSet(regions []Region) error {
	if len(regions) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "region dataset must contain at least one region")
	}
	seen := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		if _, dup := seen[r.Name]; dup {
			return errors.Newf(errors.ErrCodeDuplicateRegion, "region %q appears more than once", r.Name)
		}
		seen[r.Name] = struct{}{}

		for _, c := range AllCategories() {
			if r.Capacity(c) < 0 {
				return errors.Newf(errors.ErrCodeNegativeCapacity,
					"region %q has negative %s capacity %.2f MW", r.Name, c, r.Capacity(c))
			}
		}
		if r.LargeHydroMW < 0 {
			return errors.Newf(errors.ErrCodeNegativeCapacity,
				"region %q has negative large-hydro capacity %.2f MW", r.Name, r.LargeHydroMW)
		}
	}
	return nil
}

// FindByName returns the index of the named region, or -1.
func FindByName(regions []Region, name string) int {
	for i, r := range regions {
		if r.Name == name {
			return i
		}
	}
	return -1
}
