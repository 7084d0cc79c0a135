package harvest

// Resource describes one extractable material. It is built once with its
// Definition and never mutated.
type Resource struct {
	// ReqSkill is the skill value an actor needs before the skill check is attempted
	ReqSkill float64 `validate:"gte=0"`
	// MinSkill and MaxSkill bound the success-chance curve of the skill check
	MinSkill float64 `validate:"gte=0"`
	MaxSkill float64 `validate:"gtefield=MinSkill"`
	// Message is sent to the actor on a successful harvest
	Message string
	// Types lists the yield item types in declaration order
	Types []string `validate:"min=1,dive,required"`
}

// NewResource creates a resource. Types must contain at least one item type.
func NewResource(reqSkill, minSkill, maxSkill float64, message string, types ...string) *Resource {
	return &Resource{
		ReqSkill: reqSkill,
		MinSkill: minSkill,
		MaxSkill: maxSkill,
		Message:  message,
		Types:    types,
	}
}

// SkillGateMet reports whether the given skill value satisfies the resource's gate
func (r *Resource) SkillGateMet(skill float64) bool {
	return skill >= r.ReqSkill && skill >= r.MinSkill
}

// BonusResource is an extra item a successful harvest may award. An entry
// with no ItemType stands for "nothing" and only carries weight.
type BonusResource struct {
	ReqSkill float64 `validate:"gte=0"`
	Chance   float64 `validate:"gte=0"`
	Message  string
	ItemType string
}
