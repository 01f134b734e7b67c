package dto

type CreatePalRequest struct {
	Name               string         `json:"name" binding:"required"`
	Personality        map[string]any `json:"personality" binding:"required"`
	RelationshipStatus string         `json:"relationship_status"`
	AvatarURL          *string        `json:"avatar_url,omitempty"`
	Bio                *string        `json:"bio,omitempty"`
	Preferences        map[string]any `json:"preferences,omitempty"`
}

// UpdatePalRequest enumerates every updatable field; nil means unchanged.
type UpdatePalRequest struct {
	Name               *string         `json:"name,omitempty"`
	Personality        *map[string]any `json:"personality,omitempty"`
	RelationshipStatus *string         `json:"relationship_status,omitempty"`
	AvatarURL          *string         `json:"avatar_url,omitempty"`
	Bio                *string         `json:"bio,omitempty"`
	Preferences        *map[string]any `json:"preferences,omitempty"`
}
