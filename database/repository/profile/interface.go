package profileRepo

import (
	"github.com/ao561/cues-hackathon/models"
)

// ProfileRepository defines methods for participant profile data access.
type ProfileRepository interface {
	// GetByParticipantID retrieves one participant's stored profile.
	GetByParticipantID(id string) (*models.Profile, error)
	// Upsert creates or replaces a profile record.
	Upsert(profile *models.Profile) error
	// Delete removes a profile record by participant ID.
	Delete(id string) error
}
