// Package extraction turns free-text delivery notifications into structured orders
// using per-app keyword cues.
package extraction

import "strings"

// CueTable lists, in priority order, the substrings that introduce each field.
type CueTable struct {
	Pickup  []string
	Dropoff []string
	Amount  []string
}

// CueTables maps lower-cased app names to their CueTable, with a fallback for unknown apps.
type CueTables struct {
	apps     map[string]CueTable
	fallback CueTable
}

// NewCueTables builds a lookup from app tables and a fallback table. Keys and cues are lower-cased.
func NewCueTables(apps map[string]CueTable, fallback CueTable) *CueTables {
	tables := &CueTables{
		apps:     make(map[string]CueTable, len(apps)),
		fallback: fallback.normalized(),
	}
	for name, table := range apps {
		tables.apps[normalizeAppName(name)] = table.normalized()
	}

	return tables
}

// DefaultCueTables returns the built-in tables for the known partner apps.
func DefaultCueTables() *CueTables {
	return NewCueTables(map[string]CueTable{
		"talabat": {
			Pickup:  []string{"pickup from", "collect from", "restaurant", "pickup location", "من"},
			Dropoff: []string{"deliver to", "delivery address", "customer address", "destination", "إلى"},
			Amount:  []string{"amount", "price", "payment", "جنيه", "ج.م", "egp"},
		},
		"careem": {
			Pickup:  []string{"pickup", "pick up", "starting location", "from", "pickup at"},
			Dropoff: []string{"dropoff", "drop off", "destination", "to", "dropoff at"},
			Amount:  []string{"fare", "cost", "price", "egp", "جنيه", "ج.م"},
		},
		"indrive": {
			Pickup:  []string{"pickup from", "starting point", "from", "pickup location"},
			Dropoff: []string{"destination", "drop-off", "to", "delivery location"},
			Amount:  []string{"fare", "price", "egp", "جنيه", "ج.م", "cost"},
		},
		"uber eats": {
			Pickup:  []string{"restaurant", "pickup from", "collect from", "ready at"},
			Dropoff: []string{"deliver to", "customer", "destination", "drop off at"},
			Amount:  []string{"total", "amount", "price", "جنيه", "egp"},
		},
		"instashop": {
			Pickup:  []string{"shop", "store", "pickup from", "pickup at", "collect from"},
			Dropoff: []string{"deliver to", "customer", "destination", "delivery address"},
			Amount:  []string{"order total", "total", "amount", "price", "egp", "جنيه"},
		},
	}, CueTable{
		Pickup:  []string{"pickup", "from", "restaurant", "store", "shop", "source", "origin"},
		Dropoff: []string{"deliver", "to", "customer", "destination", "dropoff", "delivery"},
		Amount:  []string{"amount", "price", "payment", "total", "cost", "fare", "egp", "جنيه"},
	})
}

// Merge returns a copy of t with the given app tables added or replaced.
// A non-nil fallback replaces the default table.
func (t *CueTables) Merge(apps map[string]CueTable, fallback *CueTable) *CueTables {
	merged := make(map[string]CueTable, len(t.apps)+len(apps))
	for name, table := range t.apps {
		merged[name] = table
	}
	for name, table := range apps {
		merged[normalizeAppName(name)] = table
	}

	base := t.fallback
	if fallback != nil {
		base = *fallback
	}

	return NewCueTables(merged, base)
}

// Lookup returns the table for appName, or the fallback table if the app is unknown.
func (t *CueTables) Lookup(appName string) CueTable {
	if table, ok := t.apps[normalizeAppName(appName)]; ok {
		return table
	}

	return t.fallback
}

func (c CueTable) normalized() CueTable {
	return CueTable{
		Pickup:  lowerAll(c.Pickup),
		Dropoff: lowerAll(c.Dropoff),
		Amount:  lowerAll(c.Amount),
	}
}

func lowerAll(cues []string) []string {
	out := make([]string, 0, len(cues))
	for _, cue := range cues {
		if cue == "" {
			continue
		}
		out = append(out, strings.ToLower(cue))
	}

	return out
}

func normalizeAppName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
