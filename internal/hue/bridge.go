// Package hue wraps the huego bridge client behind a small interface so
// command handlers can be tested against stubs.
package hue

import (
	"fmt"
	"net"
	"strconv"

	"github.com/amimof/huego"
)

// Light is a single light as reported by the bridge. On is nil when the
// bridge does not report a power state for the light.
type Light struct {
	ID        string
	Name      string
	Reachable bool
	On        *bool
}

// Group is a named collection of lights. Lights holds light IDs in the
// order the bridge returned them.
type Group struct {
	ID     string
	Name   string
	Lights []string
}

// Bridge is the set of bridge operations the commands need.
type Bridge interface {
	// Lights returns all lights known to the bridge.
	Lights() ([]Light, error)
	// Groups returns all groups configured on the bridge.
	Groups() ([]Group, error)
	// SetLightOn turns the identified light on or off.
	SetLightOn(id string, on bool) error
	// RenameLight sets the display name of the identified light.
	RenameLight(id, name string) error
	// SearchNewLights asks the bridge to start scanning for new lights.
	SearchNewLights() error
	// NewLights returns the IDs of lights found by the last scan.
	NewLights() ([]string, error)
}

// Session is a huego-backed Bridge bound to one address and username.
// It holds no state beyond those two values.
type Session struct {
	bridge *huego.Bridge
}

var _ Bridge = (*Session)(nil)

// NewSession returns a session for the bridge at addr authenticated as
// username.
func NewSession(addr net.IP, username string) *Session {
	return newSession(addr.String(), username)
}

func newSession(host, username string) *Session {
	return &Session{bridge: huego.New(host, username)}
}

func (s *Session) Lights() ([]Light, error) {
	lights, err := s.bridge.GetLights()
	if err != nil {
		return nil, fmt.Errorf("getting lights: %w", err)
	}
	out := make([]Light, 0, len(lights))
	for _, l := range lights {
		light := Light{
			ID:   strconv.Itoa(l.ID),
			Name: l.Name,
		}
		if l.State != nil {
			light.Reachable = l.State.Reachable
			on := l.State.On
			light.On = &on
		}
		out = append(out, light)
	}
	return out, nil
}

func (s *Session) Groups() ([]Group, error) {
	groups, err := s.bridge.GetGroups()
	if err != nil {
		return nil, fmt.Errorf("getting groups: %w", err)
	}
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, Group{
			ID:     strconv.Itoa(g.ID),
			Name:   g.Name,
			Lights: g.Lights,
		})
	}
	return out, nil
}

func (s *Session) SetLightOn(id string, on bool) error {
	n, err := lightID(id)
	if err != nil {
		return err
	}
	if _, err := s.bridge.SetLightState(n, huego.State{On: on}); err != nil {
		return fmt.Errorf("setting light %s state: %w", id, err)
	}
	return nil
}

func (s *Session) RenameLight(id, name string) error {
	n, err := lightID(id)
	if err != nil {
		return err
	}
	if _, err := s.bridge.UpdateLight(n, huego.Light{Name: name}); err != nil {
		return fmt.Errorf("renaming light %s: %w", id, err)
	}
	return nil
}

func (s *Session) SearchNewLights() error {
	if _, err := s.bridge.FindLights(); err != nil {
		return fmt.Errorf("starting light search: %w", err)
	}
	return nil
}

func (s *Session) NewLights() ([]string, error) {
	res, err := s.bridge.GetNewLights()
	if err != nil {
		return nil, fmt.Errorf("getting new lights: %w", err)
	}
	return res.Lights, nil
}

// lightID converts the CLI-facing string ID to huego's numeric form.
func lightID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("invalid light id %q: %w", id, err)
	}
	return n, nil
}

// Register pairs with the bridge at addr and returns the username it
// issues. The bridge link button must have been pressed shortly before
// the call.
func Register(addr net.IP, clientName string) (string, error) {
	bridge := huego.New(addr.String(), "")
	username, err := bridge.CreateUser(clientName)
	if err != nil {
		return "", fmt.Errorf("registering with bridge %s: %w", addr, err)
	}
	return username, nil
}
