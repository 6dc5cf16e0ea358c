package profile

import (
	"testing"

	"github.com/luxscale/go-engine/internal/report"
)

func scene(name, profile string) *report.Scene {
	return &report.Scene{Name: name, UtilisationProfile: profile}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		room        report.Room
		scene       *report.Scene
		project     string
		wantProfile string
		wantSource  Source
	}{
		// Explicit room profile short-circuits everything else.
		{
			"room-profile-verbatim",
			report.Room{Name: "Room 1", UtilisationProfile: "Health care premises"},
			scene("the factory", ""),
			"Al amal factory",
			"Health care premises",
			SourceRoomProfile,
		},

		// Industrial scene names outrank the scene's own profile.
		{
			"scene-the-factory",
			report.Room{Name: "building 1 · storey 1 · room 1"},
			scene("the factory", ""),
			"",
			ProfileIndustrial,
			SourceSceneName,
		},
		{
			"scene-industrial-beats-scene-profile",
			report.Room{Name: "Room 2"},
			scene("Warehouse east wing", "Offices"),
			"",
			ProfileIndustrial,
			SourceSceneName,
		},
		{
			"scene-production-line",
			report.Room{Name: "Room 3"},
			scene("Production Line A", ""),
			"",
			ProfileIndustrial,
			SourceSceneName,
		},

		// Explicit scene profile.
		{
			"scene-profile",
			report.Room{Name: "Room 4"},
			scene("scene 1", "Restaurants and hotels"),
			"",
			"Restaurants and hotels",
			SourceSceneProfile,
		},

		// Working-place scene names.
		{
			"scene-working-place",
			report.Room{Name: "Room 5"},
			scene("Working place 2", ""),
			"",
			ProfileIndustrial,
			SourceSceneWork,
		},
		// "work" is an unanchored substring, so it fires on scene names
		// that merely contain it. Inherited imprecision, pinned here.
		{
			"scene-network-room-counts-as-work",
			report.Room{Name: "Room 6"},
			scene("Network room", ""),
			"",
			ProfileIndustrial,
			SourceSceneWork,
		},

		// Room-name table.
		{
			"room-open-office",
			report.Room{Name: "Open Office 3"},
			nil,
			"",
			ProfileOffices,
			SourceRoomName,
		},
		{
			"room-workshop",
			report.Room{Name: "Main Workshop"},
			nil,
			"",
			ProfileIndustrial,
			SourceRoomName,
		},
		{
			"room-corridor",
			report.Room{Name: "Corridor B"},
			nil,
			"",
			ProfileTraffic,
			SourceRoomName,
		},
		{
			"room-storage",
			report.Room{Name: "Cold Storage"},
			nil,
			"",
			ProfileStoreRooms,
			SourceRoomName,
		},
		// Industrial row is checked before the storage row, so a name
		// hitting both resolves industrial.
		{
			"room-warehouse-storage-prefers-industrial",
			report.Room{Name: "Warehouse storage area"},
			nil,
			"",
			ProfileIndustrial,
			SourceRoomName,
		},

		// Generic room names consult the project name.
		{
			"generic-room-industrial-project",
			report.Room{Name: "building 1 · storey 1 · room 1"},
			nil,
			"Al amal factory",
			ProfileIndustrial,
			SourceProjectName,
		},
		{
			"generic-room-plain-project",
			report.Room{Name: "Room 12"},
			nil,
			"Sunrise Plaza",
			ProfileGeneral,
			SourceRoomName,
		},

		// Fallthrough.
		{
			"default",
			report.Room{Name: "Zone 9"},
			nil,
			"",
			ProfileGeneral,
			SourceDefault,
		},
		{
			"default-empty-everything",
			report.Room{},
			nil,
			"",
			ProfileGeneral,
			SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.room, tt.scene, report.Metadata{ProjectName: tt.project})
			if got.Profile != tt.wantProfile {
				t.Errorf("profile: got %q, want %q", got.Profile, tt.wantProfile)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source: got %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}

func TestResolve_NeverEmpty(t *testing.T) {
	rooms := []report.Room{
		{},
		{Name: "x"},
		{Name: "Room", UtilisationProfile: ""},
	}
	for _, room := range rooms {
		got := Resolve(room, nil, report.Metadata{})
		if got.Profile == "" {
			t.Errorf("room %+v resolved to empty profile", room)
		}
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	got := Resolve(report.Room{Name: "FACTORY FLOOR"}, nil, report.Metadata{})
	if got.Profile != ProfileIndustrial {
		t.Errorf("got %q, want %q", got.Profile, ProfileIndustrial)
	}

	got = Resolve(report.Room{Name: "Room 1"}, scene("THE FACTORY", ""), report.Metadata{})
	if got.Profile != ProfileIndustrial || got.Source != SourceSceneName {
		t.Errorf("got %q/%q, want industrial via scene_name", got.Profile, got.Source)
	}
}
