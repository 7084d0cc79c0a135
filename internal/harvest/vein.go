package harvest

// Vein is a weighted choice of what a bank yields. Veins are owned by their
// Definition; Fallback points at another vein of the same definition (or a
// private base vein) and the chain must terminate.
type Vein struct {
	// Chance is the selection weight used when drawing a vein for a bank
	Chance float64 `validate:"gte=0"`
	// Rarity is the chance in [0,1] that a harvest falls back to the fallback vein's resource
	Rarity float64 `validate:"gte=0,lte=1"`
	// Primary is the resource this vein yields when its gate is met
	Primary *Resource `validate:"required"`
	// Fallback is consulted when Primary cannot be harvested; nil ends the chain
	Fallback *Vein `validate:"-"`
}

// NewVein creates a vein
func NewVein(chance, rarity float64, primary *Resource, fallback *Vein) *Vein {
	return &Vein{
		Chance:   chance,
		Rarity:   rarity,
		Primary:  primary,
		Fallback: fallback,
	}
}

// FallbackResource returns the fallback vein's primary resource, or nil at the end of the chain
func (v *Vein) FallbackResource() *Resource {
	if v.Fallback == nil {
		return nil
	}
	return v.Fallback.Primary
}

// ResourceForSkill walks the fallback chain until it reaches a resource whose
// skill gate is met, or the last vein in the chain, whose resource is the base.
func (v *Vein) ResourceForSkill(skill float64) *Resource {
	cur := v
	for cur.Fallback != nil && !cur.Primary.SkillGateMet(skill) {
		cur = cur.Fallback
	}
	return cur.Primary
}

// chain returns the vein and every fallback after it. It stops and reports
// false as soon as a vein repeats.
func (v *Vein) chain() ([]*Vein, bool) {
	seen := make(map[*Vein]struct{})
	var out []*Vein
	for cur := v; cur != nil; cur = cur.Fallback {
		if _, dup := seen[cur]; dup {
			return out, false
		}
		seen[cur] = struct{}{}
		out = append(out, cur)
	}
	return out, true
}

// selectVein returns the first vein whose cumulative share of the total chance
// exceeds sample.
func selectVein(veins []*Vein, sample float64) *Vein {
	return weightedPick(veins, func(v *Vein) float64 { return v.Chance }, sample)
}

// weightedPick returns the first item whose cumulative share of the total
// weight exceeds sample. Ties favor the earlier item. A single item, or a list
// whose weights are all zero, yields the first item.
func weightedPick[T any](items []T, weight func(T) float64, sample float64) T {
	var zero T
	switch len(items) {
	case 0:
		return zero
	case 1:
		return items[0]
	}

	total := 0.0
	for _, it := range items {
		total += weight(it)
	}
	if total <= 0 {
		return items[0]
	}

	cumulative := 0.0
	for _, it := range items {
		cumulative += weight(it)
		if cumulative/total > sample {
			return it
		}
	}

	return items[len(items)-1]
}
