// Package combination pairs a user's pending orders whose trips lie close together.
package combination

import (
	"math"
	"time"

	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotEnoughOrders is returned when fewer than two orders are supplied.
var ErrNotEnoughOrders = errors.New("at least 2 orders are required to form a combination")

// Rules configures pair admission and time estimation.
type Rules struct {
	MaxPickupGapKm  float64 // Pickups farther apart than this are never paired.
	MaxDropoffGapKm float64 // Dropoffs farther apart than this are never paired.
	MinutesPerKm    float64
}

// DefaultRules returns the stock thresholds: 2 km between pickups, 5 km between dropoffs, 5 min/km.
func DefaultRules() Rules {
	return Rules{
		MaxPickupGapKm:  2.0,
		MaxDropoffGapKm: 5.0,
		MinutesPerKm:    5,
	}
}

// Generator scores order pairs under a fixed set of Rules.
type Generator struct {
	rules Rules
	now   func() time.Time
}

// NewGenerator creates a Generator. Zero-valued fields of rules fall back to DefaultRules.
func NewGenerator(rules Rules) *Generator {
	defaults := DefaultRules()
	if rules.MaxPickupGapKm <= 0 {
		rules.MaxPickupGapKm = defaults.MaxPickupGapKm
	}
	if rules.MaxDropoffGapKm <= 0 {
		rules.MaxDropoffGapKm = defaults.MaxDropoffGapKm
	}
	if rules.MinutesPerKm <= 0 {
		rules.MinutesPerKm = defaults.MinutesPerKm
	}

	return &Generator{rules: rules, now: time.Now}
}

// Rules returns the effective rules.
func (g *Generator) Rules() Rules {
	return g.rules
}

// Generate evaluates every unordered pair of orders once and returns a combination
// for each admitted pair, in pair order. The caller is responsible for passing only
// one user's pending orders.
func (g *Generator) Generate(userID uuid.UUID, orders []*entity.Order) ([]*entity.OrderCombination, error) {
	if len(orders) < 2 {
		return nil, ErrNotEnoughOrders
	}

	var combinations []*entity.OrderCombination
	for i := 0; i < len(orders); i++ {
		for j := i + 1; j < len(orders); j++ {
			if combo, ok := g.score(userID, orders[i], orders[j]); ok {
				combinations = append(combinations, combo)
			}
		}
	}

	return combinations, nil
}

// PairScore is the geometry of one candidate pair.
type PairScore struct {
	PickupGapKm       float64
	DropoffGapKm      float64
	TotalDistanceKm   float64
	SeparateKm        float64
	SavingsPercentage float64
	EstimatedMinutes  int
}

// Admitted reports whether the pair passes both distance cutoffs.
func (r Rules) Admitted(score PairScore) bool {
	return score.PickupGapKm <= r.MaxPickupGapKm && score.DropoffGapKm <= r.MaxDropoffGapKm
}

// ScorePair computes pair geometry. Total distance is the pickup gap plus each
// order's own leg; savings compare it against servicing both legs separately.
func (r Rules) ScorePair(a, b *entity.Order) PairScore {
	pickupGap := geo.Distance(a.Pickup.Point(), b.Pickup.Point())
	dropoffGap := geo.Distance(a.Dropoff.Point(), b.Dropoff.Point())
	legA := geo.Distance(a.Pickup.Point(), a.Dropoff.Point())
	legB := geo.Distance(b.Pickup.Point(), b.Dropoff.Point())

	total := pickupGap + legA + legB
	separate := legA + legB

	// Non-positive whenever the pickups differ; kept as the published metric.
	savings := 0.0
	if separate > 0 {
		savings = roundTo((separate-total)/separate*100, 1)
	}

	return PairScore{
		PickupGapKm:       pickupGap,
		DropoffGapKm:      dropoffGap,
		TotalDistanceKm:   total,
		SeparateKm:        separate,
		SavingsPercentage: savings,
		EstimatedMinutes:  int(math.Round(total * r.MinutesPerKm)),
	}
}

func (g *Generator) score(userID uuid.UUID, a, b *entity.Order) (*entity.OrderCombination, bool) {
	score := g.rules.ScorePair(a, b)
	if !g.rules.Admitted(score) {
		return nil, false
	}

	return &entity.OrderCombination{
		ID:                   uuid.New(),
		UserID:               userID,
		OrderIDs:             []uuid.UUID{a.ID, b.ID},
		TotalDistanceKm:      roundTo(score.TotalDistanceKm, 2),
		EstimatedTimeMinutes: score.EstimatedMinutes,
		SavingsPercentage:    score.SavingsPercentage,
		Accepted:             false,
		CreatedAt:            g.now(),
	}, true
}

func roundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(value*scale) / scale
}
