package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceFractions(t *testing.T) {
	bundle := NewContextBundle()
	assert.Equal(t, 0.0, bundle.Confidence())

	bundle.Add(ContextSnippet{Role: RoleAvailability, ParticipantID: "alice"})
	assert.InDelta(t, 0.2, bundle.Confidence(), 1e-9)

	bundle.Add(ContextSnippet{Role: RoleLocation, ParticipantID: "alice"})
	bundle.Add(ContextSnippet{Role: RoleProfile, ParticipantID: "alice"})
	bundle.Add(ContextSnippet{Role: RoleSentiment})
	assert.InDelta(t, 0.8, bundle.Confidence(), 1e-9)

	bundle.Add(ContextSnippet{Role: RoleWeather})
	assert.InDelta(t, 1.0, bundle.Confidence(), 1e-9)
}

func TestConfidenceIgnoresFailedSnippets(t *testing.T) {
	bundle := NewContextBundle()
	bundle.Add(FailedSnippet(RoleWeather, "", FailureTimeout, "timed out"))
	assert.Equal(t, 0.0, bundle.Confidence())
	assert.False(t, bundle.RoleContributed(RoleWeather))
}

func TestRoleContributedMixedSnippets(t *testing.T) {
	// One participant failed, one succeeded: the role still contributed.
	bundle := NewContextBundle()
	bundle.Add(
		FailedSnippet(RoleAvailability, "alice", FailureUnavailable, "calendar down"),
		ContextSnippet{Role: RoleAvailability, ParticipantID: "bob"},
	)
	assert.True(t, bundle.RoleContributed(RoleAvailability))
}

func TestAddGroupsByRole(t *testing.T) {
	bundle := NewContextBundle()
	bundle.Add(
		ContextSnippet{Role: RoleLocation, ParticipantID: "alice"},
		ContextSnippet{Role: RoleLocation, ParticipantID: "bob"},
		ContextSnippet{Role: RoleWeather},
	)
	assert.Len(t, bundle.Role(RoleLocation), 2)
	assert.Len(t, bundle.Role(RoleWeather), 1)
}
