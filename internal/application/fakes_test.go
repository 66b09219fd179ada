package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// In-memory fakes implementing the domain repository interfaces, shared
// by the service tests in this package.

type memUsers struct {
	byID map[string]*entity.User
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type memProfiles struct {
	byUser map[string]*entity.Profile
	seq    int
}

func (m *memProfiles) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) Create(_ context.Context, p *entity.Profile) error {
	m.seq++
	p.ID = fmt.Sprintf("profile-%d", m.seq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.byUser[p.UserID] = &cp
	return nil
}

func (m *memProfiles) Update(_ context.Context, p *entity.Profile) error {
	stored, ok := m.byUser[p.UserID]
	if !ok {
		return fmt.Errorf("profile %s not found", p.ID)
	}
	role := stored.Role // role never changes
	cp := *p
	cp.Role = role
	cp.UpdatedAt = time.Now()
	m.byUser[p.UserID] = &cp
	return nil
}

type memEvents struct {
	byID  map[string]*entity.Event
	rsvps *memRSVPs
	seq   int
}

func (m *memEvents) GetByID(_ context.Context, id string) (*entity.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEvents) list(filter func(*entity.Event) bool) []*entity.Event {
	var out []*entity.Event
	for _, e := range m.byID {
		if filter(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (m *memEvents) ListPublic(_ context.Context) ([]*entity.Event, error) {
	return m.list(func(e *entity.Event) bool { return e.IsPublic }), nil
}

func (m *memEvents) ListPublicByCategory(_ context.Context, category string) ([]*entity.Event, error) {
	return m.list(func(e *entity.Event) bool { return e.IsPublic && e.Category == category }), nil
}

func (m *memEvents) ListPublicByIDs(_ context.Context, ids []string) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, id := range ids {
		if e, ok := m.byID[id]; ok && e.IsPublic {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEvents) ListByOrganizer(_ context.Context, organizerID string) ([]*entity.Event, error) {
	return m.list(func(e *entity.Event) bool { return e.OrganizerID == organizerID }), nil
}

func (m *memEvents) Create(_ context.Context, e *entity.Event) error {
	m.seq++
	e.ID = fmt.Sprintf("event-%d", m.seq)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memEvents) Patch(_ context.Context, id string, patch entity.EventPatch) (*entity.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("event %s not found", id)
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		e.ImageURL = *patch.ImageURL
	}
	if patch.MaxAttendees != nil {
		e.MaxAttendees = patch.MaxAttendees
	}
	if patch.IsPublic != nil {
		e.IsPublic = *patch.IsPublic
	}
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (m *memEvents) DeleteCascade(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("event %s not found", id)
	}
	for rid, r := range m.rsvps.byID {
		if r.EventID == id {
			delete(m.rsvps.byID, rid)
		}
	}
	delete(m.byID, id)
	return nil
}

type memRSVPs struct {
	byID map[string]*entity.RSVP
	seq  int
}

func (m *memRSVPs) find(userID, eventID string) *entity.RSVP {
	for _, r := range m.byID {
		if r.UserID == userID && r.EventID == eventID {
			return r
		}
	}
	return nil
}

func (m *memRSVPs) GetByUserAndEvent(_ context.Context, userID, eventID string) (*entity.RSVP, error) {
	r := m.find(userID, eventID)
	if r == nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRSVPs) listSorted(filter func(*entity.RSVP) bool) []*entity.RSVP {
	var out []*entity.RSVP
	for _, r := range m.byID {
		if filter(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRSVPs) ListByEvent(_ context.Context, eventID string) ([]*entity.RSVP, error) {
	return m.listSorted(func(r *entity.RSVP) bool { return r.EventID == eventID }), nil
}

func (m *memRSVPs) ListByUser(_ context.Context, userID string) ([]*entity.RSVP, error) {
	return m.listSorted(func(r *entity.RSVP) bool { return r.UserID == userID }), nil
}

func (m *memRSVPs) Upsert(_ context.Context, rec *entity.RSVP) (bool, error) {
	if existing := m.find(rec.UserID, rec.EventID); existing != nil {
		existing.Status = rec.Status
		existing.Notes = rec.Notes
		existing.UpdatedAt = time.Now()
		*rec = *existing
		return false, nil
	}
	m.seq++
	rec.ID = fmt.Sprintf("rsvp-%d", m.seq)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	cp := *rec
	m.byID[rec.ID] = &cp
	return true, nil
}

func (m *memRSVPs) Delete(_ context.Context, userID, eventID string) (string, error) {
	r := m.find(userID, eventID)
	if r == nil {
		return "", nil
	}
	delete(m.byID, r.ID)
	return r.ID, nil
}

type memNotifications struct {
	items []*entity.Notification
	seq   int
}

func (m *memNotifications) Create(_ context.Context, n *entity.Notification) error {
	m.seq++
	n.ID = fmt.Sprintf("notification-%d", m.seq)
	n.CreatedAt = time.Now()
	cp := *n
	m.items = append(m.items, &cp)
	return nil
}

func (m *memNotifications) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	for _, n := range m.items {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memNotifications) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	// items are appended in creation order; newest first means reverse
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if m.items[i].UserID == userID {
			cp := *m.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id string) error {
	for _, n := range m.items {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

func (m *memNotifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.items {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

// memIndex mimics the title search: substring match on title, exact
// category/location constraints, public events only.
type memIndex struct {
	docs map[string]*entity.Event
}

func (m *memIndex) Index(_ context.Context, e *entity.Event) error {
	cp := *e
	m.docs[e.ID] = &cp
	return nil
}

func (m *memIndex) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func (m *memIndex) Search(_ context.Context, query, category, location string) ([]string, error) {
	var ids []string
	for id, e := range m.docs {
		if !e.IsPublic {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(query)) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if location != "" && e.Location != location {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type memPublisher struct {
	published []any
}

func (m *memPublisher) PublishJSON(_ context.Context, body any) error {
	m.published = append(m.published, body)
	return nil
}

// fixture bundles the fakes and services under test.
type fixture struct {
	users         *memUsers
	profiles      *memProfiles
	events        *memEvents
	rsvps         *memRSVPs
	notifications *memNotifications
	index         *memIndex
	pub           *memPublisher

	eventSvc        *EventService
	rsvpSvc         *RSVPService
	notificationSvc *NotificationService
	profileSvc      *ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:         &memUsers{byID: map[string]*entity.User{}},
		profiles:      &memProfiles{byUser: map[string]*entity.Profile{}},
		rsvps:         &memRSVPs{byID: map[string]*entity.RSVP{}},
		notifications: &memNotifications{},
		index:         &memIndex{docs: map[string]*entity.Event{}},
		pub:           &memPublisher{},
	}
	f.events = &memEvents{byID: map[string]*entity.Event{}, rsvps: f.rsvps}
	f.eventSvc = NewEventService(f.events, f.rsvps, f.users, f.profiles, f.index, nil, "", nil)
	f.rsvpSvc = NewRSVPService(f.rsvps, f.events, f.users, f.profiles, f.notifications, f.pub, nil)
	f.notificationSvc = NewNotificationService(f.notifications, nil)
	f.profileSvc = NewProfileService(f.users, f.profiles, nil)
	return f
}

func (f *fixture) addUser(t *testing.T, id, name, email string) string {
	t.Helper()
	f.users.byID[id] = &entity.User{ID: id, Name: name, Email: email, CreatedAt: time.Now()}
	return id
}

func (f *fixture) addProfile(t *testing.T, userID, role, org string) {
	t.Helper()
	p := &entity.Profile{UserID: userID, Role: role, OrganizationName: org}
	if err := f.profiles.Create(context.Background(), p); err != nil {
		t.Fatalf("add profile for %s: %v", userID, err)
	}
}

func (f *fixture) addEvent(t *testing.T, organizerID, title, category, location string, date int64, public bool) string {
	t.Helper()
	e := &entity.Event{
		Title:       title,
		Description: "test event",
		Date:        date,
		Location:    location,
		Category:    category,
		OrganizerID: organizerID,
		IsPublic:    public,
	}
	if err := f.events.Create(context.Background(), e); err != nil {
		t.Fatalf("add event %q: %v", title, err)
	}
	if err := f.index.Index(context.Background(), e); err != nil {
		t.Fatalf("index event %q: %v", title, err)
	}
	return e.ID
}

// addOrganizer creates a user with an organizer profile.
func (f *fixture) addOrganizer(t *testing.T, id, name, org string) string {
	t.Helper()
	f.addUser(t, id, name, name+"@example.com")
	f.addProfile(t, id, entity.RoleOrganizer, org)
	return id
}

// addAttendee creates a user with an attendee profile.
func (f *fixture) addAttendee(t *testing.T, id, name string) string {
	t.Helper()
	f.addUser(t, id, name, name+"@example.com")
	f.addProfile(t, id, entity.RoleAttendee, "")
	return id
}
