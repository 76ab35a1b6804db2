package providers

import (
	"context"
	"errors"

	profileRepo "github.com/ao561/cues-hackathon/database/repository/profile"
	"github.com/ao561/cues-hackathon/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StoredProfileProvider serves participant profiles from the profile
// repository. A participant without a stored profile gets an empty one;
// no record is not a failure.
type StoredProfileProvider struct {
	Repo profileRepo.ProfileRepository
}

func (p *StoredProfileProvider) Profile(ctx context.Context, participantID string) (*models.Profile, error) {
	profile, err := p.Repo.GetByParticipantID(participantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Profile{ParticipantID: participantID}, nil
		}
		return nil, NewProviderError(models.FailureUnavailable, err)
	}
	return profile, nil
}
