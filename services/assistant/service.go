// File: services/assistant/service.go
package assistant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carlos-tribe/holly-assistant-hicv/config"
	"github.com/carlos-tribe/holly-assistant-hicv/models"
	"github.com/carlos-tribe/holly-assistant-hicv/services/catalog"
	"github.com/carlos-tribe/holly-assistant-hicv/utils"
)

// Scheduler enqueues delayed, cancellable per-session tasks. Implementations
// must include the session generation in the payload so resets invalidate
// pending work.
type Scheduler interface {
	SchedulePropertyAdvance(ctx context.Context, sessionID string, generation int, delay time.Duration) error
	ScheduleReveal(ctx context.Context, sessionID string, generation int, destinationID string, delay time.Duration) error
}

// UtteranceResult is the full outcome of one guest utterance.
type UtteranceResult struct {
	SessionID string              `json:"sessionId"`
	Reply     string              `json:"reply"`
	Intent    models.VoiceIntent  `json:"intent"`
	State     models.BookingState `json:"state"`
	Effects   Effects             `json:"effects"`
}

// AssistantService is the conversational booking engine.
type AssistantService interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	HandleUtterance(ctx context.Context, sessionID, text string) (*UtteranceResult, error)
	ChooseDestinationPath(ctx context.Context, sessionID, choice string) (*models.Session, error)
	AnswerPropertyQuestion(ctx context.Context, sessionID, answer string) (*models.Session, error)
	AdvancePropertyMatching(ctx context.Context, sessionID string, generation int) error
	RevealDestination(ctx context.Context, sessionID string, generation int, destinationID string) error
	GenerateDateRanges(ctx context.Context, sessionID string, filters models.DateRangeFilters) (*models.Session, error)
	SelectDateRange(ctx context.Context, sessionID, rangeID string) (*models.Session, error)
	Reset(ctx context.Context, sessionID string) (*models.Session, error)
}

// DefaultAssistantService wires the parser, responder and reducer over a
// session store and task scheduler.
type DefaultAssistantService struct {
	Store     SessionStore
	Scheduler Scheduler
	Parser    *Parser
	Now       func() time.Time
}

func NewAssistantService(store SessionStore, scheduler Scheduler) *DefaultAssistantService {
	return &DefaultAssistantService{
		Store:     store,
		Scheduler: scheduler,
		Parser:    NewParser(),
		Now:       time.Now,
	}
}

func (s *DefaultAssistantService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Store.Get(ctx, sessionID)
}

// HandleUtterance runs one utterance through parse, respond and reduce,
// records both sides of the exchange, and persists the session.
func (s *DefaultAssistantService) HandleUtterance(ctx context.Context, sessionID, text string) (*UtteranceResult, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	// Property-matching step 3 is the automatic "thinking" window; input
	// arriving during it is dropped.
	if session.State.CurrentStep == models.StepPropertyMatching && session.State.PropertyMatchingStep == 3 {
		return &UtteranceResult{
			SessionID: session.ID,
			Reply:     "",
			Intent:    models.UnknownIntent(text),
			State:     session.State,
		}, nil
	}

	session.Conversation.Append(models.RoleUser, text, now)

	intent := s.Parser.Parse(text, session.State.CurrentStep, session.State)
	reply := Respond(intent, session.State.CurrentStep, session.State)
	nextState, effects := Reduce(intent, session.State, now)
	session.State = nextState

	if effects.RegenerateRanges && effects.RangeFilters != nil {
		s.applyRangeGeneration(session, *effects.RangeFilters, effects.AdvancePage, now)
	}

	if len(effects.StagedReveal) > 0 && s.Scheduler != nil {
		s.scheduleReveals(ctx, session, effects.StagedReveal)
	}

	session.Conversation.Append(models.RoleHolly, reply, now)
	session.UpdatedAt = now
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}

	logger.Debug("Utterance handled",
		zap.String("session", session.ID),
		zap.String("intent", string(intent.Type)),
		zap.Float64("confidence", intent.Confidence),
		zap.String("step", string(session.State.CurrentStep)))

	return &UtteranceResult{
		SessionID: session.ID,
		Reply:     reply,
		Intent:    intent,
		State:     session.State,
		Effects:   effects,
	}, nil
}

// scheduleReveals stages a timed presentation of the suggested destinations:
// a short lead-in delay, one destination every reveal interval, then a final
// clearing tick.
func (s *DefaultAssistantService) scheduleReveals(ctx context.Context, session *models.Session, destinationIDs []string) {
	logger := utils.GetLogger()
	interval := time.Duration(config.AppConfig.RevealIntervalSecs) * time.Second
	lead := 500 * time.Millisecond

	for i, destID := range destinationIDs {
		delay := lead + time.Duration(i)*interval
		if err := s.Scheduler.ScheduleReveal(ctx, session.ID, session.Generation, destID, delay); err != nil {
			logger.Warn("Failed to schedule reveal", zap.String("session", session.ID), zap.Error(err))
		}
	}
	clearDelay := lead + time.Duration(len(destinationIDs))*interval
	if err := s.Scheduler.ScheduleReveal(ctx, session.ID, session.Generation, "", clearDelay); err != nil {
		logger.Warn("Failed to schedule reveal clear", zap.String("session", session.ID), zap.Error(err))
	}
}

// ChooseDestinationPath applies the keep/explore choice. Keeping the default
// destination completes both choice steps and jumps straight to dates;
// exploring opens the destination browser.
func (s *DefaultAssistantService) ChooseDestinationPath(ctx context.Context, sessionID, choice string) (*models.Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	switch choice {
	case models.PreferenceKeep:
		session.State.DestinationPreference = models.PreferenceKeep
		session.State.DestinationConfirmed = true
		session.State.CompletedSteps = append(session.State.CompletedSteps,
			models.StepDestinationChoice, models.StepSelectDestination)
		session.State.CurrentStep = models.StepChooseDates
		session.Conversation.Append(models.RoleUser, "Keep "+session.State.SelectedDestination, now)

	case models.PreferenceExplore:
		session.State.DestinationPreference = models.PreferenceExplore
		session.State.CompletedSteps = append(session.State.CompletedSteps, models.StepDestinationChoice)
		session.State.CurrentStep = models.StepSelectDestination
		session.Conversation.Append(models.RoleUser, "I want to explore other destinations", now)

	default:
		return nil, fmt.Errorf("unknown destination choice %q", choice)
	}

	session.UpdatedAt = now
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AnswerPropertyQuestion advances the property-matching questionnaire. The
// third answer moves to the automatic "matching in progress" state and
// schedules its timed completion; answers during that window are dropped.
func (s *DefaultAssistantService) AnswerPropertyQuestion(ctx context.Context, sessionID, answer string) (*models.Session, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	state := &session.State

	if state.PropertyMatchingStep >= 3 {
		// Thinking window or terminal; input has no effect.
		return session, nil
	}

	session.Conversation.Append(models.RoleUser, answer, now)
	state.CurrentStep = models.StepPropertyMatching
	state.PropertyMatchingStep++

	if state.PropertyMatchingStep == 3 {
		delay := time.Duration(config.AppConfig.PropertyMatchDelayMs) * time.Millisecond
		if s.Scheduler != nil {
			if err := s.Scheduler.SchedulePropertyAdvance(ctx, session.ID, session.Generation, delay); err != nil {
				logger.Warn("Failed to schedule property advance", zap.String("session", session.ID), zap.Error(err))
			}
		}
	}

	session.UpdatedAt = now
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AdvancePropertyMatching completes the matching flow (step 3 to 4). Called
// by the delayed task; a generation mismatch means the session was reset
// after scheduling, so the task no-ops.
func (s *DefaultAssistantService) AdvancePropertyMatching(ctx context.Context, sessionID string, generation int) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Generation != generation {
		utils.GetLogger().Debug("Dropping stale property advance",
			zap.String("session", sessionID),
			zap.Int("taskGeneration", generation),
			zap.Int("sessionGeneration", session.Generation))
		return nil
	}
	if session.State.PropertyMatchingStep != 3 {
		return nil
	}

	session.State.PropertyMatchingStep = 4
	session.State.PropertyMatchingComplete = true
	session.State.MatchedPropertyName = matchedPropertyFor(session.State.SelectedDestination)
	session.UpdatedAt = s.Now()
	return s.Store.Set(ctx, session)
}

// RevealDestination applies one staged-reveal tick: highlight the given
// destination, or clear the highlight when destinationID is empty. Stale
// generations no-op.
func (s *DefaultAssistantService) RevealDestination(ctx context.Context, sessionID string, generation int, destinationID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Generation != generation {
		return nil
	}
	session.DiscussedDestination = destinationID
	session.UpdatedAt = s.Now()
	return s.Store.Set(ctx, session)
}

// matchedPropertyFor picks the headline property for a destination: the
// first curated option's property when one exists.
func matchedPropertyFor(destinationID string) string {
	options := catalog.GetFlexibleDatesForDestination(destinationID)
	if len(options) > 0 {
		return options[0].PropertyName
	}
	if dest := catalog.GetDestinationByID(destinationID); dest != nil {
		return dest.Name + " Resort"
	}
	return "Holiday Inn Club Vacations Resort"
}

// GenerateDateRanges builds a fresh page of range options and completes the
// narrowing phase.
func (s *DefaultAssistantService) GenerateDateRanges(ctx context.Context, sessionID string, filters models.DateRangeFilters) (*models.Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	session.State.DateRangePageIndex = 0
	s.applyRangeGeneration(session, filters, false, now)

	session.UpdatedAt = now
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// applyRangeGeneration regenerates the visible range page. Advancing the
// page widens the generation window and shows the next slice.
func (s *DefaultAssistantService) applyRangeGeneration(session *models.Session, filters models.DateRangeFilters, advancePage bool, now time.Time) {
	state := &session.State

	if advancePage {
		state.DateRangePageIndex++
	} else {
		state.DateRangePageIndex = 0
	}

	limit := catalog.DefaultRangeLimit * (state.DateRangePageIndex + 1)
	options := catalog.GenerateDateRangeOptions(filters, limit, now)
	if start := state.DateRangePageIndex * catalog.DefaultRangeLimit; start < len(options) {
		options = options[start:]
	} else {
		// Past the last page; keep showing the final slice.
		state.DateRangePageIndex--
		if tail := len(options) - catalog.DefaultRangeLimit; tail > 0 {
			options = options[tail:]
		}
	}

	state.DateRangeOptions = options
	state.DateNarrowingComplete = true
	state.HighlightedDateRangeID = ""
}

// SelectDateRange is the explicit second phase of range selection: commit a
// displayed (usually highlighted) range and advance to tour scheduling.
func (s *DefaultAssistantService) SelectDateRange(ctx context.Context, sessionID, rangeID string) (*models.Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	state := &session.State

	var selected *models.DateRangeOption
	for i := range state.DateRangeOptions {
		if state.DateRangeOptions[i].ID == rangeID {
			selected = &state.DateRangeOptions[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("date range %s is not among the offered options", rangeID)
	}

	checkIn := selected.CheckInDate
	checkOut := selected.CheckOutDate
	state.CheckInDate = &checkIn
	state.CheckOutDate = &checkOut
	state.HighlightedDateRangeID = ""
	state.CompletedSteps = append(state.CompletedSteps, models.StepChooseDates)
	state.CurrentStep = models.StepScheduleTour

	session.UpdatedAt = now
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset reinitializes the session. The generation bump orphans any pending
// delayed tasks from the previous lifetime.
func (s *DefaultAssistantService) Reset(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Reset()
	session.UpdatedAt = s.Now()
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
