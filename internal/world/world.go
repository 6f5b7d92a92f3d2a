// Package world defines the simulated world state: regions, factions,
// aggregate resources and people, legitimacy meters, and traits. The state is
// owned by exactly one player session and mutated only through explicit
// transforms that return new values.
package world

// Resources are the five stockpiled goods. Conceptually non-negative, but
// arithmetic is allowed to go negative; callers that care (the planner)
// exclude unaffordable actions up front.
type Resources struct {
	Gold  int `json:"gold"`
	Grain int `json:"grain"`
	Iron  int `json:"iron"`
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
}

// Get returns a named resource amount; unknown names read as 0.
func (r Resources) Get(name string) int {
	switch name {
	case "gold":
		return r.Gold
	case "grain":
		return r.Grain
	case "iron":
		return r.Iron
	case "wood":
		return r.Wood
	case "stone":
		return r.Stone
	}
	return 0
}

// Add adjusts a named resource by delta. Unknown names are ignored.
func (r *Resources) Add(name string, delta int) {
	switch name {
	case "gold":
		r.Gold += delta
	case "grain":
		r.Grain += delta
	case "iron":
		r.Iron += delta
	case "wood":
		r.Wood += delta
	case "stone":
		r.Stone += delta
	}
}

// ResourceNames lists the canonical resource keys in stable order.
var ResourceNames = []string{"gold", "grain", "iron", "wood", "stone"}

// People aggregates the human side of the realm. Loyalty, unrest, and faith
// live in [0,1].
type People struct {
	Population int     `json:"population"`
	Loyalty    float64 `json:"loyalty"`
	Unrest     float64 `json:"unrest"`
	Faith      float64 `json:"faith"`
}

// Forces is the realm's standing military.
type Forces struct {
	Units  int     `json:"units"`
	Morale float64 `json:"morale"`
	Supply float64 `json:"supply"`
}

// Legitimacy tracks the four sources of a ruler's right to rule, each 0–100.
type Legitimacy struct {
	Law     float64 `json:"law"`
	Faith   float64 `json:"faith"`
	Lineage float64 `json:"lineage"`
	Might   float64 `json:"might"`
}

// MeterNames lists the legitimacy meters in stable order.
var MeterNames = []string{"law", "faith", "lineage", "might"}

// Meter returns a named legitimacy value; unknown names read as 0.
func (l Legitimacy) Meter(name string) float64 {
	switch name {
	case "law":
		return l.Law
	case "faith":
		return l.Faith
	case "lineage":
		return l.Lineage
	case "might":
		return l.Might
	}
	return 0
}

// AddMeter adjusts a named meter by delta, clamped to [0,100].
func (l *Legitimacy) AddMeter(name string, delta float64) {
	set := func(v *float64) {
		*v += delta
		if *v < 0 {
			*v = 0
		}
		if *v > 100 {
			*v = 100
		}
	}
	switch name {
	case "law":
		set(&l.Law)
	case "faith":
		set(&l.Faith)
	case "lineage":
		set(&l.Lineage)
	case "might":
		set(&l.Might)
	}
}

// Lowest returns the name and value of the weakest legitimacy meter. Ties go
// to the earlier meter in canonical order.
func (l Legitimacy) Lowest() (string, float64) {
	name, val := "law", l.Law
	for _, m := range MeterNames[1:] {
		if l.Meter(m) < val {
			name, val = m, l.Meter(m)
		}
	}
	return name, val
}

// Region is one territory of the world. Security, lawfulness, unrest, piety,
// and heresy are 0–100 scalars; the affinity vector holds one [0,1] value per
// ambition domain and is not normalized.
type Region struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Terrain    string             `json:"terrain"`
	Controlled bool               `json:"controlled"`
	Endowment  Resources          `json:"endowment"`
	People     People             `json:"people"`
	Security   float64            `json:"security"`
	Lawfulness float64            `json:"lawfulness"`
	Unrest     float64            `json:"unrest"`
	Piety      float64            `json:"piety"`
	Heresy     float64            `json:"heresy"`
	Affinity   map[string]float64 `json:"affinity"`
}

// Stance is a faction's disposition toward the player.
type Stance string

const (
	StanceAllied  Stance = "allied"
	StanceNeutral Stance = "neutral"
	StanceHostile Stance = "hostile"
)

// Faction is an organized power holding regions, with its own domain affinity.
type Faction struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Stance   Stance             `json:"stance"`
	Power    float64            `json:"power"`
	Regions  []string           `json:"regions"`
	Affinity map[string]float64 `json:"affinity"`
}

// WorldState is the complete simulation state for one player's world.
type WorldState struct {
	Seed       int64           `json:"seed"`
	PlayerID   string          `json:"player_id"`
	Tick       uint64          `json:"tick"`
	Regions    []*Region       `json:"regions"`
	Factions   []*Faction      `json:"factions"`
	Resources  Resources       `json:"resources"`
	People     People          `json:"people"`
	Forces     Forces          `json:"forces"`
	Legitimacy Legitimacy      `json:"legitimacy"`
	Traits     map[string]bool `json:"traits"`
}

// HasTrait reports trait membership.
func (w *WorldState) HasTrait(name string) bool {
	return w.Traits[name]
}

// SetTrait adds or removes a trait flag.
func (w *WorldState) SetTrait(name string, present bool) {
	if present {
		w.Traits[name] = true
	} else {
		delete(w.Traits, name)
	}
}

// TraitList returns trait names in arbitrary order.
func (w *WorldState) TraitList() []string {
	out := make([]string, 0, len(w.Traits))
	for t := range w.Traits {
		out = append(out, t)
	}
	return out
}

// Region returns the region with the given id, or nil.
func (w *WorldState) Region(id string) *Region {
	for _, r := range w.Regions {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ControlledRegions returns the player-held regions in world order.
func (w *WorldState) ControlledRegions() []*Region {
	var out []*Region
	for _, r := range w.Regions {
		if r.Controlled {
			out = append(out, r)
		}
	}
	return out
}

// AvgSecurity averages security over all regions; 0 for an empty world.
func (w *WorldState) AvgSecurity() float64 {
	if len(w.Regions) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range w.Regions {
		sum += r.Security
	}
	return sum / float64(len(w.Regions))
}

// Clone returns a deep copy built field by field. This replaces the
// serialize/deserialize snapshotting the engine used to rely on: no encoding
// cost and nothing non-JSON-safe gets dropped.
func (w *WorldState) Clone() *WorldState {
	next := &WorldState{
		Seed:       w.Seed,
		PlayerID:   w.PlayerID,
		Tick:       w.Tick,
		Resources:  w.Resources,
		People:     w.People,
		Forces:     w.Forces,
		Legitimacy: w.Legitimacy,
		Regions:    make([]*Region, len(w.Regions)),
		Factions:   make([]*Faction, len(w.Factions)),
		Traits:     make(map[string]bool, len(w.Traits)),
	}
	for i, r := range w.Regions {
		cp := *r
		cp.Affinity = copyAffinity(r.Affinity)
		next.Regions[i] = &cp
	}
	for i, f := range w.Factions {
		cp := *f
		cp.Regions = append([]string(nil), f.Regions...)
		cp.Affinity = copyAffinity(f.Affinity)
		next.Factions[i] = &cp
	}
	for t := range w.Traits {
		next.Traits[t] = true
	}
	return next
}

func copyAffinity(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp100 bounds v to [0,100].
func Clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
