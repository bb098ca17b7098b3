package domain

// OwnerKind is the kind of document an effect is attached to.
type OwnerKind string

const (
	OwnerActor    OwnerKind = "actor"
	OwnerFacility OwnerKind = "facility"
)

// OwnerRef identifies the owner of an effect.
type OwnerRef struct {
	Kind OwnerKind `json:"kind"`
	ID   string    `json:"id"`
}

// Key returns a stable string identity.
func (o OwnerRef) Key() string {
	return string(o.Kind) + ":" + o.ID
}

// ActorOwner returns the owner reference of an actor.
func ActorOwner(actorID string) OwnerRef {
	return OwnerRef{Kind: OwnerActor, ID: actorID}
}

// FacilityOwner returns the owner reference of a facility.
func FacilityOwner(facilityID string) OwnerRef {
	return OwnerRef{Kind: OwnerFacility, ID: facilityID}
}

// EffectDescriptor is an effect as exposed by the effect source provider.
// Modifier is nil when the effect carries no venture modifier definition.
type EffectDescriptor struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Owner      OwnerRef       `json:"owner"`
	Disabled   bool           `json:"disabled"`
	Suppressed bool           `json:"suppressed"`
	Template   bool           `json:"template"`
	Modifier   map[string]any `json:"modifier,omitempty"`
	Duration   map[string]any `json:"duration,omitempty"`
	Changes    []EffectChange `json:"changes,omitempty"`
}

// EffectChange is one key/value entry of the legacy change-list representation.
type EffectChange struct {
	Key   string `json:"key"`
	Mode  int    `json:"mode"`
	Value string `json:"value"`
}

// EffectMutation is a batched update applied to one effect of an owner.
// Delete removes the effect; otherwise RemainingTurns is written.
type EffectMutation struct {
	EffectID       string `json:"effect_id"`
	Delete         bool   `json:"delete"`
	RemainingTurns int    `json:"remaining_turns"`
}

// DocumentKind distinguishes grantable rewards.
type DocumentKind string

const (
	DocumentItem   DocumentKind = "item"
	DocumentEffect DocumentKind = "effect"
)

// Document is a grantable reward referenced by a boon.
type Document struct {
	Ref      string         `json:"ref"`
	Kind     DocumentKind   `json:"kind"`
	Name     string         `json:"name"`
	Data     map[string]any `json:"data,omitempty"`
	Modifier map[string]any `json:"modifier,omitempty"`
	Duration map[string]any `json:"duration,omitempty"`
}
