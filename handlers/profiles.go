package handlers

import (
	"errors"
	"net/http"

	profileRepo "github.com/ao561/cues-hackathon/database/repository/profile"
	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileHandler manages stored participant constraints and preferences.
type ProfileHandler struct {
	Repo profileRepo.ProfileRepository
}

// NewProfileHandler builds the profile endpoints around a repository.
func NewProfileHandler(repo profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

// GetProfile fetches one participant's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id := c.Param("participantID")
	profile, err := h.Repo.GetByParticipantID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates or replaces a participant's profile.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if profile.ParticipantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant id is required"})
		return
	}
	if err := h.Repo.Upsert(&profile); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes a participant's profile.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("participantID")
	if err := h.Repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
