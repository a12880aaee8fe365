package domain

// ProfileVisibilityInput carries the caller's optional visibility flags.
type ProfileVisibilityInput struct {
	IsPublic      *bool
	AcceptContact *bool
}

// ProfileVisibility is the resolved pair of visibility flags.
type ProfileVisibility struct {
	IsPublic      bool
	AcceptContact bool
}

// ResolveProfileVisibility fills unset flags with the opt-out defaults (both true).
// Forcing AcceptContact off for private profiles is the command layer's job.
func ResolveProfileVisibility(input ProfileVisibilityInput) ProfileVisibility {
	v := ProfileVisibility{IsPublic: true, AcceptContact: true}
	if input.IsPublic != nil {
		v.IsPublic = *input.IsPublic
	}
	if input.AcceptContact != nil {
		v.AcceptContact = *input.AcceptContact
	}
	return v
}
