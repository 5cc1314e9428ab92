// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/progress"
	"github.com/MKhiriev/go-learn-tracker/internal/store"
	"github.com/MKhiriev/go-learn-tracker/internal/utils"
	"github.com/MKhiriev/go-learn-tracker/internal/validators"
	"github.com/MKhiriev/go-learn-tracker/models"
)

// learningService is the concrete implementation of LearningService.
//
// All mutations follow the same sequence: validate the input, apply the
// change to the session's in-memory document, then persist the whole
// document. Persistence failures are logged and swallowed so a flaky disk
// never discards a change the user already sees on screen; the next
// successful save writes the full current state anyway.
type learningService struct {
	documentRepository store.DocumentRepository
	validator          validators.Validator
	uuidGenerator      *utils.UUIDGenerator
	now                func() time.Time
	logger             *logger.Logger
}

// NewLearningService constructs a LearningService backed by the provided
// document repository.
func NewLearningService(documentRepository store.DocumentRepository, logger *logger.Logger) LearningService {
	return &learningService{
		documentRepository: documentRepository,
		validator:          validators.NewLearningValidator(),
		uuidGenerator:      utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// LoadDocument populates the session's document from storage. Any load
// failure is logged and degraded to an empty document: the user can keep
// working and the next save re-establishes a consistent stored state.
func (l *learningService) LoadDocument(ctx context.Context, session *Session) error {
	log := logger.FromContext(ctx)

	document, err := l.documentRepository.Load(ctx, session.UserID())
	if err != nil {
		log.Err(err).Str("user_id", session.UserID()).Msg("loading document failed, starting empty")
		session.Document = models.Document{}
		return nil
	}

	session.Document = document
	return nil
}

// AddTopic validates the form input and appends a new topic to the document.
// Priority defaults to Medium when the form leaves it unset.
func (l *learningService) AddTopic(ctx context.Context, session *Session, input models.AddTopicInput) (models.Topic, error) {
	if err := l.validator.Validate(ctx, input); err != nil {
		return models.Topic{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	topic := models.Topic{
		ID:         l.uuidGenerator.Generate(),
		Name:       input.Name,
		Category:   input.Category,
		Priority:   priority,
		TargetDate: input.TargetDate,
		GoalHours:  input.GoalHours,
		CreatedAt:  l.now(),
	}

	session.Document.Topics = append(session.Document.Topics, topic)
	l.persist(ctx, session)

	return topic, nil
}

// UpdateTopic applies a partial update to an existing topic. Only the fields
// set on the input overwrite the stored ones; everything else is kept.
func (l *learningService) UpdateTopic(ctx context.Context, session *Session, input models.UpdateTopicInput) (models.Topic, error) {
	if err := l.validator.Validate(ctx, input); err != nil {
		return models.Topic{}, err
	}

	idx := l.topicIndex(session, input.TopicID)
	if idx < 0 {
		return models.Topic{}, ErrTopicNotFound
	}

	patch := models.Topic{TargetDate: input.TargetDate}
	if input.Name != nil {
		patch.Name = *input.Name
	}
	if input.Category != nil {
		patch.Category = *input.Category
	}
	if input.Priority != nil {
		patch.Priority = *input.Priority
	}
	if input.GoalHours != nil {
		patch.GoalHours = *input.GoalHours
	}

	topic := session.Document.Topics[idx]
	if err := mergo.Merge(&topic, patch, mergo.WithOverride); err != nil {
		return models.Topic{}, err
	}

	session.Document.Topics[idx] = topic
	l.persist(ctx, session)

	return topic, nil
}

// DeleteTopic removes the topic and cascades the removal to every study
// session logged against it, so no session ever points at a dead topic.
func (l *learningService) DeleteTopic(ctx context.Context, session *Session, topicID string) error {
	idx := l.topicIndex(session, topicID)
	if idx < 0 {
		return ErrTopicNotFound
	}

	session.Document.Topics = append(session.Document.Topics[:idx], session.Document.Topics[idx+1:]...)

	kept := session.Document.Sessions[:0]
	for _, s := range session.Document.Sessions {
		if s.TopicID != topicID {
			kept = append(kept, s)
		}
	}
	session.Document.Sessions = kept

	l.persist(ctx, session)
	return nil
}

// LogSession records a study interval against a topic. The domain guards run
// before anything is mutated: a passed deadline blocks logging outright and a
// positive goal caps the candidate duration at the remaining capacity. The
// date defaults to today when the form leaves it empty.
func (l *learningService) LogSession(ctx context.Context, session *Session, input models.LogSessionInput) (models.Session, error) {
	if err := l.validator.Validate(ctx, input); err != nil {
		return models.Session{}, err
	}

	topic := l.findTopic(session, input.TopicID)
	if err := progress.ValidateSessionLog(topic, session.Document.Sessions, input.Duration, l.now()); err != nil {
		return models.Session{}, err
	}

	date := input.Date
	if date == "" {
		date = l.now().Format(time.DateOnly)
	}

	studySession := models.Session{
		ID:       l.uuidGenerator.Generate(),
		TopicID:  input.TopicID,
		Duration: input.Duration,
		Notes:    input.Notes,
		Date:     date,
	}

	session.Document.Sessions = append(session.Document.Sessions, studySession)
	l.persist(ctx, session)

	return studySession, nil
}

// Progress derives the current progress snapshot of one topic.
func (l *learningService) Progress(session *Session, topicID string) (models.Progress, error) {
	topic := l.findTopic(session, topicID)
	if topic == nil {
		return models.Progress{}, ErrTopicNotFound
	}

	return progress.Compute(*topic, session.Document.Sessions, l.now()), nil
}

// RemainingMinutes reports the unlogged goal capacity of a topic. The second
// value is false when the topic does not exist or has no goal.
func (l *learningService) RemainingMinutes(session *Session, topicID string) (int, bool) {
	topic := l.findTopic(session, topicID)
	if topic == nil {
		return 0, false
	}

	return progress.Remaining(*topic, session.Document.Sessions)
}

// FilteredTopics narrows the topic list by category and a case-insensitive
// name query, preserving stored order.
func (l *learningService) FilteredTopics(session *Session, category, query string) []models.Topic {
	return progress.FilterTopics(session.Document.Topics, category, query)
}

// ActiveTopicCount counts topics that are neither completed nor past their
// deadline at the given instant.
func (l *learningService) ActiveTopicCount(session *Session, now time.Time) int {
	var count int
	for _, topic := range session.Document.Topics {
		if progress.Compute(topic, session.Document.Sessions, now).IsActive {
			count++
		}
	}
	return count
}

// TotalStudyHours sums the logged time of all topics, rounded to one decimal
// place for display.
func (l *learningService) TotalStudyHours(session *Session) float64 {
	var totalMinutes int
	for _, s := range session.Document.Sessions {
		totalMinutes += s.Duration
	}
	return math.Round(float64(totalMinutes)/60*10) / 10
}

func (l *learningService) findTopic(session *Session, topicID string) *models.Topic {
	if idx := l.topicIndex(session, topicID); idx >= 0 {
		return &session.Document.Topics[idx]
	}
	return nil
}

func (l *learningService) topicIndex(session *Session, topicID string) int {
	for i, topic := range session.Document.Topics {
		if topic.ID == topicID {
			return i
		}
	}
	return -1
}

// persist writes the whole document back to storage. Failures are logged and
// swallowed: the in-memory state is authoritative until the next save.
func (l *learningService) persist(ctx context.Context, session *Session) {
	if err := l.documentRepository.Save(ctx, session.UserID(), session.Document); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", session.UserID()).Msg("persisting document failed")
	}
}
