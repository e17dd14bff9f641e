package hue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge serves just enough of the Hue HTTP API for the session.
func fakeBridge(t *testing.T) (*Session, *[]string) {
	t.Helper()

	var requests []string
	mux := http.NewServeMux()

	mux.HandleFunc("/api/testuser/lights/new", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"lastscan": "2026-08-31T12:00:00",
			"7":        map[string]string{"name": "Hue lamp 7"},
		})
	})
	mux.HandleFunc("/api/testuser/lights/2/state", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"success": map[string]any{"/lights/2/state/on": true}},
		})
	})
	mux.HandleFunc("/api/testuser/lights/2", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"success": map[string]any{"/lights/2/name": "Desk"}},
		})
	})
	mux.HandleFunc("/api/testuser/lights", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"success": map[string]any{"/lights": "Searching for new devices"}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"1": map[string]any{
				"name":  "Desk",
				"state": map[string]any{"on": true, "reachable": true},
			},
			"2": map[string]any{
				"name":  "Hallway",
				"state": map[string]any{"on": false, "reachable": false},
			},
		})
	})
	mux.HandleFunc("/api/testuser/groups", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"1": map[string]any{
				"name":   "Living Room",
				"lights": []string{"1", "5", "9"},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return newSession(srv.URL, "testuser"), &requests
}

func TestSessionLights(t *testing.T) {
	s, _ := fakeBridge(t)

	lights, err := s.Lights()
	require.NoError(t, err)
	require.Len(t, lights, 2)

	byID := map[string]Light{}
	for _, l := range lights {
		byID[l.ID] = l
	}

	desk := byID["1"]
	assert.Equal(t, "Desk", desk.Name)
	assert.True(t, desk.Reachable)
	require.NotNil(t, desk.On)
	assert.True(t, *desk.On)

	hallway := byID["2"]
	assert.Equal(t, "Hallway", hallway.Name)
	assert.False(t, hallway.Reachable)
	require.NotNil(t, hallway.On)
	assert.False(t, *hallway.On)
}

func TestSessionGroups(t *testing.T) {
	s, _ := fakeBridge(t)

	groups, err := s.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "1", groups[0].ID)
	assert.Equal(t, "Living Room", groups[0].Name)
	assert.Equal(t, []string{"1", "5", "9"}, groups[0].Lights)
}

func TestSessionSetLightOn(t *testing.T) {
	s, requests := fakeBridge(t)

	require.NoError(t, s.SetLightOn("2", true))
	assert.Contains(t, *requests, "PUT /api/testuser/lights/2/state")
}

func TestSessionSetLightOnInvalidID(t *testing.T) {
	s, _ := fakeBridge(t)

	err := s.SetLightOn("not-a-number", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-number")
}

func TestSessionRenameLight(t *testing.T) {
	s, requests := fakeBridge(t)

	require.NoError(t, s.RenameLight("2", "Desk"))
	assert.Contains(t, *requests, "PUT /api/testuser/lights/2")
}

func TestSessionSearchNewLights(t *testing.T) {
	s, requests := fakeBridge(t)

	require.NoError(t, s.SearchNewLights())
	assert.Contains(t, *requests, "POST /api/testuser/lights")
}

func TestSessionNewLights(t *testing.T) {
	s, _ := fakeBridge(t)

	ids, err := s.NewLights()
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, ids)
}
