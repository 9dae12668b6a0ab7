package photo

import (
	"context"
	"strings"
	"testing"

	vehicle "github.com/roverent/roverent-backend/internal/vehicles"
	"github.com/roverent/roverent-backend/pkg/db"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

func mustService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:        NewRepository(client.DB()),
		VehicleRepo: vehicle.NewRepository(client.DB()),
		DB:          client,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func caption(s string) *string { return &s }

func TestAddAndListOrdersPrimaryFirst(t *testing.T) {
	client := openTestClient(t)
	svc := mustService(t, client)
	v := mustCreateTestVehicle(t, client, "PH-100")

	if _, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: v.ID,
		URL:       "https://img.example.com/side.jpg",
		SortOrder: 2,
	}); err != nil {
		t.Fatalf("add photo: %v", err)
	}
	primary, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: v.ID,
		URL:       "https://img.example.com/front.jpg",
		Caption:   caption("front three-quarter"),
		IsPrimary: true,
		SortOrder: 5,
	})
	if err != nil {
		t.Fatalf("add primary photo: %v", err)
	}

	listed, err := svc.ListByVehicle(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("list photos: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(listed))
	}
	if listed[0].ID != primary.ID || !listed[0].IsPrimary {
		t.Fatalf("primary photo must sort first, got %+v", listed)
	}
}

func TestAddValidatesURL(t *testing.T) {
	client := openTestClient(t)
	svc := mustService(t, client)
	v := mustCreateTestVehicle(t, client, "PH-200")

	cases := []struct {
		name string
		url  string
	}{
		{"blank", "   "},
		{"relative", "/photos/front.jpg"},
		{"no scheme", "img.example.com/front.jpg"},
		{"too long", "https://img.example.com/" + strings.Repeat("a", 500)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), AddPhotoInput{VehicleID: v.ID, URL: tc.url})
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	_, err := svc.Add(context.Background(), AddPhotoInput{VehicleID: 999, URL: "https://img.example.com/x.jpg"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown vehicle, got %v", err)
	}
}

func TestSetPrimaryDisplacesCurrent(t *testing.T) {
	client := openTestClient(t)
	svc := mustService(t, client)
	v := mustCreateTestVehicle(t, client, "PH-300")

	first, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: v.ID,
		URL:       "https://img.example.com/1.jpg",
		IsPrimary: true,
	})
	if err != nil {
		t.Fatalf("add photo: %v", err)
	}
	second, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: v.ID,
		URL:       "https://img.example.com/2.jpg",
	})
	if err != nil {
		t.Fatalf("add photo: %v", err)
	}

	promoted, err := svc.SetPrimary(context.Background(), v.ID, second.ID)
	if err != nil {
		t.Fatalf("set primary: %v", err)
	}
	if !promoted.IsPrimary {
		t.Fatalf("promoted photo must be primary")
	}

	listed, err := svc.ListByVehicle(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("list photos: %v", err)
	}
	for _, p := range listed {
		if p.ID == first.ID && p.IsPrimary {
			t.Fatalf("old primary must be demoted")
		}
	}
}

func TestSetPrimaryRejectsForeignPhoto(t *testing.T) {
	client := openTestClient(t)
	svc := mustService(t, client)
	a := mustCreateTestVehicle(t, client, "PH-400")
	b := mustCreateTestVehicle(t, client, "PH-401")

	photo, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: a.ID,
		URL:       "https://img.example.com/a.jpg",
	})
	if err != nil {
		t.Fatalf("add photo: %v", err)
	}

	_, err = svc.SetPrimary(context.Background(), b.ID, photo.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for photo of another vehicle, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	client := openTestClient(t)
	svc := mustService(t, client)
	v := mustCreateTestVehicle(t, client, "PH-500")

	photo, err := svc.Add(context.Background(), AddPhotoInput{
		VehicleID: v.ID,
		URL:       "https://img.example.com/x.jpg",
	})
	if err != nil {
		t.Fatalf("add photo: %v", err)
	}
	if err := svc.Delete(context.Background(), photo.ID); err != nil {
		t.Fatalf("delete photo: %v", err)
	}

	err = svc.Delete(context.Background(), photo.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
