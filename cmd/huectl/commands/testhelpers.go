package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"regexp"

	"github.com/pterm/pterm"

	"huectl/internal/hue"
)

// captureStdout captures stdout during the execution of f, disables pterm
// color, and strips ANSI codes from the output.
func captureStdout(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Point pterm's printers at the pipe as well
	oldPrintColor := pterm.PrintColor
	oldTableWriter := pterm.DefaultTable.Writer
	oldInfoWriter := pterm.Info.Writer
	oldSuccessWriter := pterm.Success.Writer

	pterm.PrintColor = false
	pterm.DefaultTable.Writer = w
	pterm.Info.Writer = w
	pterm.Success.Writer = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	pterm.PrintColor = oldPrintColor
	pterm.DefaultTable.Writer = oldTableWriter
	pterm.Info.Writer = oldInfoWriter
	pterm.Success.Writer = oldSuccessWriter

	out := <-outC

	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(out, "")
}

// errFailSet is returned by stubBridge.SetLightOn for the configured id.
var errFailSet = errors.New("bridge rejected state change")

// setCall records one SetLightOn invocation.
type setCall struct {
	id string
	on bool
}

// stubBridge implements hue.Bridge with canned data for CLI tests.
type stubBridge struct {
	lights    []hue.Light
	groups    []hue.Group
	lightsErr error
	groupsErr error

	setCalls []setCall
	failSet  string          // SetLightOn fails for this id
	onSet    func(calls int) // invoked after every successful SetLightOn

	renames [][2]string

	searched   bool
	searchErr  error
	newIDs     []string
	newErr     error
	fetchedNew bool
}

var _ hue.Bridge = (*stubBridge)(nil)

func (s *stubBridge) Lights() ([]hue.Light, error) {
	return s.lights, s.lightsErr
}

func (s *stubBridge) Groups() ([]hue.Group, error) {
	return s.groups, s.groupsErr
}

func (s *stubBridge) SetLightOn(id string, on bool) error {
	if id == s.failSet {
		return errFailSet
	}
	s.setCalls = append(s.setCalls, setCall{id: id, on: on})
	if s.onSet != nil {
		s.onSet(len(s.setCalls))
	}
	return nil
}

func (s *stubBridge) RenameLight(id, name string) error {
	s.renames = append(s.renames, [2]string{id, name})
	return nil
}

func (s *stubBridge) SearchNewLights() error {
	if s.searchErr != nil {
		return s.searchErr
	}
	s.searched = true
	return nil
}

func (s *stubBridge) NewLights() ([]string, error) {
	s.fetchedNew = true
	return s.newIDs, s.newErr
}

// executeWithBridge runs the root command with the stub bridge injected
// through the context, returning captured stdout and the command error.
func executeWithBridge(br hue.Bridge, args ...string) (string, error) {
	root := NewRootCommand(nil, "test", "none", "none")
	root.SetArgs(args)

	ctx := context.Background()
	if br != nil {
		ctx = context.WithValue(ctx, bridgeContextKey{}, br)
	}

	var err error
	out := captureStdout(func() {
		err = root.ExecuteContext(ctx)
	})
	return out, err
}

func boolPtr(b bool) *bool { return &b }
