package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/domain/entity"
	repo "github.com/gatherly/gatherly/internal/domain/repository"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// EventIndex is the full-text search collaborator over event titles.
// Search returns matching event ids in relevance order. Implementations
// must tolerate a nil receiver being absent from the wiring (callers
// nil-check before use).
type EventIndex interface {
	Index(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query, category, location string) ([]string, error)
}

// EventFilter narrows a catalog listing. All fields are optional.
type EventFilter struct {
	Search   string
	Category string
	Location string
}

// OrganizerInfo is the identity enrichment attached to listed events.
type OrganizerInfo struct {
	Name             string
	OrganizationName string
	ContactInfo      string
}

// EventSummary is a catalog row with its organizer resolved.
type EventSummary struct {
	entity.Event
	Organizer OrganizerInfo
}

// RSVPCounts tallies RSVPs by status for one event.
type RSVPCounts struct {
	Yes   int
	No    int
	Maybe int
}

// EventDetail is a single event enriched with organizer contact info and
// its RSVP tally.
type EventDetail struct {
	entity.Event
	Organizer  OrganizerInfo
	RSVPCounts RSVPCounts
}

// MyEvent annotates an event with the caller's own RSVP status; the
// status is empty on the organizer path.
type MyEvent struct {
	entity.Event
	RSVPStatus string
}

type CreateEventInput struct {
	Title        string
	Description  string
	Date         int64
	Location     string
	Category     string
	ImageURL     string
	MaxAttendees *int
	IsPublic     bool
}

type EventService struct {
	Events    repo.EventRepository
	RSVPs     repo.RSVPRepository
	Users     repo.UserRepository
	Profiles  repo.ProfileRepository
	Index     EventIndex
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewEventService(events repo.EventRepository, rsvps repo.RSVPRepository, users repo.UserRepository, profiles repo.ProfileRepository, index EventIndex, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *EventService {
	return &EventService{
		Events:    events,
		RSVPs:     rsvps,
		Users:     users,
		Profiles:  profiles,
		Index:     index,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
	}
}

// List returns public events matching the filter, each enriched with
// organizer name and organization. With a search term the title index
// drives the result (relevance order); otherwise events come straight
// from the store ordered by date descending.
func (s *EventService) List(ctx context.Context, filter EventFilter) ([]*EventSummary, error) {
	var (
		events []*entity.Event
		err    error
	)
	switch {
	case filter.Search != "" && s.Index != nil:
		var ids []string
		ids, err = s.Index.Search(ctx, filter.Search, filter.Category, filter.Location)
		if err != nil {
			return nil, err
		}
		events, err = s.Events.ListPublicByIDs(ctx, ids)
	case filter.Category != "":
		events, err = s.Events.ListPublicByCategory(ctx, filter.Category)
	default:
		events, err = s.Events.ListPublic(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*EventSummary, 0, len(events))
	organizers := map[string]OrganizerInfo{}
	for _, e := range events {
		info, ok := organizers[e.OrganizerID]
		if !ok {
			info = s.organizerInfo(ctx, e.OrganizerID)
			organizers[e.OrganizerID] = info
		}
		out = append(out, &EventSummary{Event: *e, Organizer: OrganizerInfo{Name: info.Name, OrganizationName: info.OrganizationName}})
	}
	return out, nil
}

// Get returns one event by id, enriched with organizer contact info and
// the RSVP tally. A direct lookup is not restricted to public events.
func (s *EventService) Get(ctx context.Context, eventID string) (*EventDetail, error) {
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}

	rsvps, err := s.RSVPs.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	var counts RSVPCounts
	for _, r := range rsvps {
		switch r.Status {
		case entity.RSVPYes:
			counts.Yes++
		case entity.RSVPNo:
			counts.No++
		case entity.RSVPMaybe:
			counts.Maybe++
		}
	}

	return &EventDetail{
		Event:      *e,
		Organizer:  s.organizerInfo(ctx, e.OrganizerID),
		RSVPCounts: counts,
	}, nil
}

// Mine returns the caller's events: owned events for an organizer, RSVPed
// events (annotated with the RSVP status) for an attendee. RSVPs whose
// event has been deleted are dropped silently.
func (s *EventService) Mine(ctx context.Context, callerID string) ([]*MyEvent, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}
	profile, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if profile != nil && profile.Role == entity.RoleOrganizer {
		events, err := s.Events.ListByOrganizer(ctx, callerID)
		if err != nil {
			return nil, err
		}
		out := make([]*MyEvent, 0, len(events))
		for _, e := range events {
			out = append(out, &MyEvent{Event: *e})
		}
		return out, nil
	}

	rsvps, err := s.RSVPs.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]*MyEvent, 0, len(rsvps))
	for _, r := range rsvps {
		e, err := s.Events.GetByID(ctx, r.EventID)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue // event deleted since the RSVP was made
		}
		out = append(out, &MyEvent{Event: *e, RSVPStatus: r.Status})
	}
	return out, nil
}

// Create stores a new event owned by the caller. Organizer role required.
func (s *EventService) Create(ctx context.Context, callerID string, in CreateEventInput) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	profile, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return "", err
	}
	if profile == nil || profile.Role != entity.RoleOrganizer {
		return "", ErrForbidden
	}

	e := &entity.Event{
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Location:     in.Location,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		OrganizerID:  callerID,
		MaxAttendees: in.MaxAttendees,
		IsPublic:     in.IsPublic,
	}
	if err := s.Events.Create(ctx, e); err != nil {
		return "", err
	}
	s.indexEvent(ctx, e)
	return e.ID, nil
}

// Update applies a partial patch to an event owned by the caller.
func (s *EventService) Update(ctx context.Context, callerID, eventID string, patch entity.EventPatch) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", ErrNotFound
	}
	if e.OrganizerID != callerID {
		return "", ErrForbidden
	}

	updated, err := s.Events.Patch(ctx, eventID, patch)
	if err != nil {
		return "", err
	}
	s.indexEvent(ctx, updated)
	return eventID, nil
}

// Delete removes an event owned by the caller together with all of its
// RSVPs. The RSVP deletion and the event deletion are one transaction;
// a partial failure leaves everything in place.
func (s *EventService) Delete(ctx context.Context, callerID, eventID string) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", ErrNotFound
	}
	if e.OrganizerID != callerID {
		return "", ErrForbidden
	}

	if err := s.Events.DeleteCascade(ctx, eventID); err != nil {
		return "", err
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, eventID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", eventID).Warn("es delete failed")
		}
	}
	return eventID, nil
}

// UploadImage stores an event image in GCS and patches the event's
// image URL. Owner only.
func (s *EventService) UploadImage(ctx context.Context, callerID, eventID string, r io.Reader, filename, contentType string) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", ErrNotFound
	}
	if e.OrganizerID != callerID {
		return "", ErrForbidden
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("events", eventID, id+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	updated, err := s.Events.Patch(ctx, eventID, entity.EventPatch{ImageURL: &url})
	if err != nil {
		return "", err
	}
	s.indexEvent(ctx, updated)
	return url, nil
}

func (s *EventService) indexEvent(ctx context.Context, e *entity.Event) {
	if s.Index == nil || e == nil {
		return
	}
	if err := s.Index.Index(ctx, e); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event_id", e.ID).Warn("es index failed")
	}
}

// organizerInfo resolves the organizer's display name, organization and
// contact info, falling back to "Unknown" when the user record is gone.
func (s *EventService) organizerInfo(ctx context.Context, organizerID string) OrganizerInfo {
	info := OrganizerInfo{Name: "Unknown"}
	u, err := s.Users.GetByID(ctx, organizerID)
	if err == nil && u != nil && u.Name != "" {
		info.Name = u.Name
	}
	p, err := s.Profiles.GetByUserID(ctx, organizerID)
	if err == nil && p != nil {
		info.OrganizationName = p.OrganizationName
		info.ContactInfo = p.ContactInfo
	}
	return info
}
