package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

func TestAllCategories_Order(t *testing.T) {
	cats := AllCategories()
	require.Len(t, cats, NumCategories)
	assert.Equal(t, [NumCategories]Category{Solar, Wind, SmallHydro, Bio}, cats)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "solar", Solar.String())
	assert.Equal(t, "wind", Wind.String())
	assert.Equal(t, "small_hydro", SmallHydro.String())
	assert.Equal(t, "bio", Bio.String())
	assert.Equal(t, "category(9)", Category(9).String())
}

func TestRegion_CapacityAndWithCapacity(t *testing.T) {
	r := Region{Name: "Alpha", SolarMW: 100, WindMW: 50, SmallHydroMW: 25, BioMW: 10, LargeHydroMW: 200}

	assert.Equal(t, 100.0, r.Capacity(Solar))
	assert.Equal(t, 50.0, r.Capacity(Wind))
	assert.Equal(t, 25.0, r.Capacity(SmallHydro))
	assert.Equal(t, 10.0, r.Capacity(Bio))

	modified := r.WithCapacity(Solar, 150)
	assert.Equal(t, 150.0, modified.Capacity(Solar))
	// Original must be untouched.
	assert.Equal(t, 100.0, r.Capacity(Solar))

	assert.Equal(t, 385.0, r.TotalMW())
}

func TestValidateSet(t *testing.T) {
	valid := []Region{
		{Name: "Alpha", SolarMW: 100},
		{Name: "Beta", WindMW: 50},
	}
	assert.NoError(t, ValidateSet(valid))

	err := ValidateSet(nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyDataset, errors.GetCode(err))

	err = ValidateSet([]Region{{Name: "Alpha"}, {Name: "Alpha"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateRegion, errors.GetCode(err))

	err = ValidateSet([]Region{{Name: "Alpha", WindMW: -1}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNegativeCapacity, errors.GetCode(err))

	err = ValidateSet([]Region{{Name: "Alpha", LargeHydroMW: -0.5}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNegativeCapacity, errors.GetCode(err))
}

func TestFindByName(t *testing.T) {
	regions := []Region{{Name: "Alpha"}, {Name: "Beta"}}
	assert.Equal(t, 1, FindByName(regions, "Beta"))
	assert.Equal(t, -1, FindByName(regions, "Gamma"))
}
