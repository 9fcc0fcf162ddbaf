package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCueTables_Lookup(t *testing.T) {
	tables := DefaultCueTables()

	talabat := tables.Lookup("  TALABAT ")
	assert.Equal(t, "pickup from", talabat.Pickup[0])
	assert.Contains(t, talabat.Amount, "جنيه")

	uberEats := tables.Lookup("Uber Eats")
	assert.Equal(t, []string{"total", "amount", "price", "جنيه", "egp"}, uberEats.Amount)

	unknown := tables.Lookup("Mrsool")
	assert.Equal(t, []string{"pickup", "from", "restaurant", "store", "shop", "source", "origin"}, unknown.Pickup)
}

func TestCueTables_NormalizesCues(t *testing.T) {
	tables := NewCueTables(map[string]CueTable{
		"Mrsool": {Pickup: []string{"Pick From", ""}, Dropoff: []string{"DROP"}},
	}, CueTable{Amount: []string{"Total"}})

	mrsool := tables.Lookup("mrsool")
	assert.Equal(t, []string{"pick from"}, mrsool.Pickup)
	assert.Equal(t, []string{"drop"}, mrsool.Dropoff)
	assert.Empty(t, mrsool.Amount)

	assert.Equal(t, []string{"total"}, tables.Lookup("other").Amount)
}

func TestCueTables_Merge(t *testing.T) {
	base := DefaultCueTables()

	merged := base.Merge(map[string]CueTable{
		"Careem": {Pickup: []string{"captain meets you at"}},
		"Mrsool": {Pickup: []string{"collect"}},
	}, nil)

	assert.Equal(t, []string{"captain meets you at"}, merged.Lookup("careem").Pickup)
	assert.Equal(t, []string{"collect"}, merged.Lookup("mrsool").Pickup)
	assert.Equal(t, base.Lookup("talabat"), merged.Lookup("talabat"))
	assert.Equal(t, base.Lookup("unknown"), merged.Lookup("unknown"))

	// the receiver is left untouched
	assert.Equal(t, "pickup", base.Lookup("careem").Pickup[0])

	fallback := CueTable{Pickup: []string{"SRC"}}
	replaced := base.Merge(nil, &fallback)
	assert.Equal(t, []string{"src"}, replaced.Lookup("unknown").Pickup)
}
