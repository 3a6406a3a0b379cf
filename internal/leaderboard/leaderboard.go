// Package leaderboard synthesizes the comparison list shown on the
// leaderboard screen. The app is single-user, so peers are generated from
// the user's own stats rather than fetched from anywhere.
package leaderboard

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"ecoaliados/pkg/models"
)

// DefaultVariance is the symmetric spread applied to the user's stats when
// deriving a peer's stats.
const DefaultVariance = 0.5

// peerNames and peerAvatars are assigned cyclically by generation order.
var peerNames = []string{
	"Danna K.", "Carlos R.", "Diana P.", "Eduardo S.", "Fernanda L.",
	"Gabriel T.", "Helena V.", "Ignacio B.", "Juliana C.", "Kevin D.",
	"Laura F.", "Miguel A.", "Natalia G.", "Oscar H.", "Basilio S.",
	"Ricardo J.", "Sofia K.", "Tomás N.", "Valentina O.", "William Q.",
}

var peerAvatars = []string{
	"🌱", "🌿", "🍃", "🌾", "🌳", "🌲", "🌴", "🌵", "🌷", "🌸",
	"🌺", "🌻", "🌼", "🌽", "🍀", "🍁", "🍂", "🌰", "🌹", "🪴",
}

// Generator builds leaderboards. Randomness and time are injected so tests
// can pin them; the output is otherwise fresh on every call, which callers
// must not assume is stable between computations.
type Generator struct {
	rng      *rand.Rand
	now      func() time.Time
	variance float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithVariance overrides the peer stat spread.
func WithVariance(v float64) Option {
	return func(g *Generator) { g.variance = v }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand, opts ...Option) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{rng: rng, now: time.Now, variance: DefaultVariance}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate combines 7-10 synthetic peers with the real user and returns the
// top 10 entries ranked by total kilograms, descending.
func (g *Generator) Generate(profile models.Profile, stats models.ProfileStats) []models.LeaderboardEntry {
	userKg, err := strconv.ParseFloat(stats.TotalKg, 64)
	if err != nil {
		userKg = 0
	}

	peerCount := g.rng.Intn(4) + 7 // 7 to 10

	entries := make([]models.LeaderboardEntry, 0, peerCount+1)
	for i := 0; i < peerCount; i++ {
		entries = append(entries, g.generatePeer(i, userKg, stats))
	}

	entries = append(entries, models.LeaderboardEntry{
		Profile:           profile,
		TotalKg:           stats.TotalKg,
		CompletedMissions: stats.CompletedMissions,
		CurrentStreak:     stats.CurrentStreak,
		IsCurrentUser:     true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return parseKg(entries[i].TotalKg) > parseKg(entries[j].TotalKg)
	})

	if len(entries) > 10 {
		entries = entries[:10]
	}
	return entries
}

// generatePeer derives one synthetic entry from the user's stats. A single
// variance draw is reused for all three stats of the peer, so a "better"
// peer is better across the board.
func (g *Generator) generatePeer(index int, userKg float64, stats models.ProfileStats) models.LeaderboardEntry {
	name := peerNames[index%len(peerNames)]
	avatar := peerAvatars[index%len(peerAvatars)]

	// Joined uniformly within the past year.
	yearAgo := 365 * 24 * time.Hour
	joined := g.now().Add(-time.Duration(g.rng.Float64() * float64(yearAgo)))

	r := (g.rng.Float64()*2 - 1) * g.variance

	peerKg := math.Max(0.1, userKg*(1+r))
	peerMissions := int(math.Max(0, math.Round(float64(stats.CompletedMissions)*(1+r*0.8))))
	peerStreak := int(math.Max(0, math.Round(float64(stats.CurrentStreak)*(1+r*0.6))))

	return models.LeaderboardEntry{
		Profile: models.Profile{
			ID:        fmt.Sprintf("npc-%d", index),
			Name:      name,
			Avatar:    avatar,
			CreatedAt: joined,
		},
		TotalKg:           fmt.Sprintf("%.1f", peerKg),
		CompletedMissions: peerMissions,
		CurrentStreak:     peerStreak,
	}
}

// UserPosition returns the 1-indexed rank of the real user, or 0 if the
// user fell out of the top 10.
func UserPosition(entries []models.LeaderboardEntry) int {
	for i, e := range entries {
		if e.IsCurrentUser {
			return i + 1
		}
	}
	return 0
}

func parseKg(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
