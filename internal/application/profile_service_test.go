package application

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

func TestProfileServiceCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous caller gets nil without error", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.profileSvc.Current(ctx, "")
		if err != nil || got != nil {
			t.Fatalf("got (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("unknown identity gets nil without error", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.profileSvc.Current(ctx, "ghost")
		if err != nil || got != nil {
			t.Fatalf("got (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("user without profile resolves with nil profile", func(t *testing.T) {
		f := newFixture(t)
		f.addUser(t, "u-1", "Alice", "alice@example.com")
		got, err := f.profileSvc.Current(ctx, "u-1")
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if got == nil || got.User.Email != "alice@example.com" {
			t.Fatalf("user not resolved: %+v", got)
		}
		if got.Profile != nil {
			t.Errorf("unexpected profile: %+v", got.Profile)
		}
	})

	t.Run("user with profile resolves both", func(t *testing.T) {
		f := newFixture(t)
		f.addOrganizer(t, "u-1", "Alice", "Acme Events")
		got, err := f.profileSvc.Current(ctx, "u-1")
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if got.Profile == nil || got.Profile.Role != entity.RoleOrganizer {
			t.Fatalf("profile not resolved: %+v", got.Profile)
		}
		if got.Profile.OrganizationName != "Acme Events" {
			t.Errorf("organization = %q", got.Profile.OrganizationName)
		}
	})
}

func TestProfileServiceCreate(t *testing.T) {
	ctx := context.Background()
	input := CreateProfileInput{Role: entity.RoleAttendee, Bio: "hi", Interests: []string{"go", "music"}}

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.profileSvc.Create(ctx, "", input); !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("err = %v, want ErrNotAuthenticated", err)
		}
	})

	t.Run("stores the profile for the caller", func(t *testing.T) {
		f := newFixture(t)
		f.addUser(t, "u-1", "Alice", "alice@example.com")
		id, err := f.profileSvc.Create(ctx, "u-1", input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == "" {
			t.Fatal("empty profile id")
		}
		p := f.profiles.byUser["u-1"]
		if p.Role != entity.RoleAttendee || p.Bio != "hi" || len(p.Interests) != 2 {
			t.Errorf("stored profile = %+v", p)
		}
	})

	t.Run("second profile for the same user conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.addAttendee(t, "u-1", "Alice")
		if _, err := f.profileSvc.Create(ctx, "u-1", input); !errors.Is(err, ErrProfileExists) {
			t.Fatalf("err = %v, want ErrProfileExists", err)
		}
	})
}

func TestProfileServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("caller without profile is not found", func(t *testing.T) {
		f := newFixture(t)
		f.addUser(t, "u-1", "Alice", "alice@example.com")
		bio := "new bio"
		if _, err := f.profileSvc.Update(ctx, "u-1", UpdateProfileInput{Bio: &bio}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		f := newFixture(t)
		f.addOrganizer(t, "u-1", "Alice", "Acme Events")
		bio := "updated bio"
		if _, err := f.profileSvc.Update(ctx, "u-1", UpdateProfileInput{Bio: &bio}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		p := f.profiles.byUser["u-1"]
		if p.Bio != "updated bio" {
			t.Errorf("bio = %q", p.Bio)
		}
		if p.OrganizationName != "Acme Events" {
			t.Errorf("organization changed to %q", p.OrganizationName)
		}
	})

	t.Run("role stays fixed across updates", func(t *testing.T) {
		f := newFixture(t)
		f.addAttendee(t, "u-1", "Alice")
		org := "Sneaky Org"
		contact := "+49 30 1234"
		if _, err := f.profileSvc.Update(ctx, "u-1", UpdateProfileInput{OrganizationName: &org, ContactInfo: &contact}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		p := f.profiles.byUser["u-1"]
		if p.Role != entity.RoleAttendee {
			t.Errorf("role = %q, want attendee", p.Role)
		}
		if p.OrganizationName != "Sneaky Org" || p.ContactInfo != "+49 30 1234" {
			t.Errorf("mutable fields not patched: %+v", p)
		}
	})
}
