package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
	"github.com/carlos-tribe/holly-assistant-hicv/services/assistant"
	"github.com/carlos-tribe/holly-assistant-hicv/utils"
)

// UtteranceRequest is a single guest utterance (typed or transcribed).
type UtteranceRequest struct {
	Text string `json:"text" binding:"required"`
}

// DestinationChoiceRequest carries the keep/explore decision.
type DestinationChoiceRequest struct {
	Choice string `json:"choice" binding:"required"`
}

// PropertyAnswerRequest is one answer in the property-matching questionnaire.
type PropertyAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// DateRangeRequest asks for a page of generated date ranges.
type DateRangeRequest struct {
	Month          string `json:"month,omitempty"`
	PreferWeekends bool   `json:"preferWeekends,omitempty"`
	PreferWeekdays bool   `json:"preferWeekdays,omitempty"`
	TimeOfMonth    string `json:"timeOfMonth,omitempty"`
}

// SelectRangeRequest commits one displayed date range.
type SelectRangeRequest struct {
	RangeID string `json:"rangeId" binding:"required"`
}

// AssistantHandler exposes the assistant service over HTTP.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(service assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: service}
}

// GetSession returns the session (creating a default one on first access).
func (h *AssistantHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.GetLogger().Error("Failed to load session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// HandleUtterance runs one utterance through the parse/respond/reduce
// pipeline.
func (h *AssistantHandler) HandleUtterance(c *gin.Context) {
	var req UtteranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.Service.HandleUtterance(c.Request.Context(), c.Param("sessionID"), req.Text)
	if err != nil {
		utils.GetLogger().Error("Failed to handle utterance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle utterance"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ChooseDestinationPath applies the keep/explore decision.
func (h *AssistantHandler) ChooseDestinationPath(c *gin.Context) {
	var req DestinationChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Choice != models.PreferenceKeep && req.Choice != models.PreferenceExplore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Choice must be 'keep' or 'explore'"})
		return
	}

	session, err := h.Service.ChooseDestinationPath(c.Request.Context(), c.Param("sessionID"), req.Choice)
	if err != nil {
		utils.GetLogger().Error("Failed to apply destination choice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply destination choice"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// AnswerPropertyQuestion records one questionnaire answer.
func (h *AssistantHandler) AnswerPropertyQuestion(c *gin.Context) {
	var req PropertyAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session, err := h.Service.AnswerPropertyQuestion(c.Request.Context(), c.Param("sessionID"), req.Answer)
	if err != nil {
		utils.GetLogger().Error("Failed to record property answer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record property answer"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GenerateDateRanges builds a fresh page of date range options.
func (h *AssistantHandler) GenerateDateRanges(c *gin.Context) {
	var req DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	filters := models.DateRangeFilters{
		Month:          req.Month,
		PreferWeekends: req.PreferWeekends,
		PreferWeekdays: req.PreferWeekdays,
		TimeOfMonth:    req.TimeOfMonth,
	}
	session, err := h.Service.GenerateDateRanges(c.Request.Context(), c.Param("sessionID"), filters)
	if err != nil {
		utils.GetLogger().Error("Failed to generate date ranges", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate date ranges"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDateRange commits a displayed range.
func (h *AssistantHandler) SelectDateRange(c *gin.Context) {
	var req SelectRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session, err := h.Service.SelectDateRange(c.Request.Context(), c.Param("sessionID"), req.RangeID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResetSession reinitializes the session and orphans pending delayed tasks.
func (h *AssistantHandler) ResetSession(c *gin.Context) {
	session, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.GetLogger().Error("Failed to reset session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
		return
	}
	c.JSON(http.StatusOK, session)
}
