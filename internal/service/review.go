package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"github.com/teamselevated/backend/internal/app/appconfig"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
)

// Stage is the position of a review session in the schedule workflow.
// Transitions only move along Pattern -> Review -> Complete, except that
// editing from Review returns to Pattern and discards the candidates.
type Stage int

const (
	StagePattern Stage = iota
	StageReview
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StagePattern:
		return "pattern"
	case StageReview:
		return "review"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ReviewSession holds the in-flight state of one admin walking through
// the generate-review-publish workflow. Sessions are transient: nothing
// reaches the store until Publish.
type ReviewSession struct {
	SessionID      string            `json:"sessionId"`
	Stage          Stage             `json:"stage"`
	Pattern        *types.SchedulePattern `json:"pattern,omitempty"`
	Candidates     []*types.Candidate `json:"candidates"`
	ConflictCount  int               `json:"conflictCount"`
	CommittedCount int               `json:"committedCount"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type Review struct {
	ScheduleService  *Schedule
	PublisherService *Publisher

	sessions *cache.Cache
}

func NewReview(conf *appconfig.Config, scheduleService *Schedule, publisherService *Publisher) *Review {
	return &Review{
		ScheduleService:  scheduleService,
		PublisherService: publisherService,
		sessions:         cache.New(conf.ReviewSessionTTL, conf.ReviewSessionTTL/4),
	}
}

func (s *Review) CreateSession() *ReviewSession {
	session := &ReviewSession{
		SessionID: xid.New().String(),
		Stage:     StagePattern,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions.SetDefault(session.SessionID, session)
	return session
}

func (s *Review) GetSession(sessionId string) (*ReviewSession, error) {
	stored, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	return stored.(*ReviewSession), nil
}

// SubmitPattern generates candidates from the pattern and advances the
// session to the review stage. Resubmitting from Review replaces the
// previous candidate set wholesale.
func (s *Review) SubmitPattern(ctx context.Context, sessionId string, request *types.GenerateRequest) (*ReviewSession, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}
	if session.Stage == StageComplete {
		return nil, apperr.ErrIllegalStageTransition
	}

	response, err := s.ScheduleService.GenerateOccurrences(ctx, &request.Pattern, request.Strict)
	if err != nil {
		return nil, err
	}

	session.Pattern = &request.Pattern
	session.Candidates = response.Candidates
	session.ConflictCount = response.ConflictCount
	session.Stage = StageReview
	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

// ToggleCandidate flips the skip flag of one candidate. Individually
// skipped conflict candidates no longer block an unconfirmed publish.
func (s *Review) ToggleCandidate(sessionId string, candidateId string) (*ReviewSession, error) {
	session, candidate, err := s.candidate(sessionId, candidateId)
	if err != nil {
		return nil, err
	}
	candidate.Skip = !candidate.Skip
	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

func (s *Review) AnnotateCandidate(sessionId string, candidateId string, notes string) (*ReviewSession, error) {
	session, candidate, err := s.candidate(sessionId, candidateId)
	if err != nil {
		return nil, err
	}
	candidate.Notes.SetValid(notes)
	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

// EditPattern returns the session to the pattern stage; the generated
// candidates and any per-candidate edits are discarded.
func (s *Review) EditPattern(sessionId string) (*ReviewSession, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}
	if session.Stage != StageReview {
		return nil, apperr.ErrIllegalStageTransition
	}

	session.Candidates = nil
	session.ConflictCount = 0
	session.Stage = StagePattern
	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

// Publish commits the accepted candidates and completes the session. A
// failed commit leaves the session in Review so the admin can retry.
func (s *Review) Publish(ctx context.Context, sessionId string, confirm bool) (*types.CommitReport, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}
	if session.Stage != StageReview {
		return nil, apperr.ErrIllegalStageTransition
	}

	report, err := s.PublisherService.PublishCandidates(ctx, session.Candidates, confirm, "pattern")
	if err != nil {
		return report, err
	}

	session.CommittedCount = report.Committed
	session.Stage = StageComplete
	s.sessions.SetDefault(session.SessionID, session)
	return report, nil
}

func (s *Review) candidate(sessionId string, candidateId string) (*ReviewSession, *types.Candidate, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, nil, err
	}
	if session.Stage != StageReview {
		return nil, nil, apperr.ErrIllegalStageTransition
	}

	candidate, ok := lo.Find(session.Candidates, func(c *types.Candidate) bool {
		return c.CandidateID == candidateId
	})
	if !ok {
		return nil, nil, apperr.ErrNotFound
	}
	return session, candidate, nil
}
