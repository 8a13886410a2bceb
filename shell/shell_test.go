package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/HanHongChen/cnsim-ctl/logger"
	"github.com/HanHongChen/cnsim-ctl/profile"
	"github.com/HanHongChen/cnsim-ctl/simulator"
	"github.com/go-playground/assert/v2"
)

const testProfileYaml = `profiles:
  default:
    plmn:
      mcc: "208"
      mnc: "93"
    dnn: internet
    slice:
      sst: 1
      sd: "010203"
    numUe: 10
    gNBs: 1
    rate: 1
  heavy:
    plmn:
      mcc: "466"
      mnc: "92"
    dnn: enterprise
    slice:
      sst: 2
      sd: "112233"
    numUe: 1000
    gNBs: 4
    rate: 50
`

type recordedRequest struct {
	method string
	path   string
	body   []byte
}

// fakeSimulator records requests. onRequest runs before the response is
// written.
type fakeSimulator struct {
	mu        sync.Mutex
	requests  []recordedRequest
	onRequest func(count int)
}

func (f *fakeSimulator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{method: r.Method, path: r.URL.Path, body: body})
	count := len(f.requests)
	onRequest := f.onRequest
	f.mu.Unlock()

	if onRequest != nil {
		onRequest(count)
	}
	_, _ = w.Write([]byte(`{"state":"running"}`))
}

func (f *fakeSimulator) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

type testShell struct {
	shell    *Shell
	registry *profile.Registry
	out      *bytes.Buffer
}

func newTestShell(t *testing.T, baseUrl string) *testShell {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cnsim-profile.yaml")
	if err := os.WriteFile(path, []byte(testProfileYaml), 0o600); err != nil {
		t.Fatalf("Failed to write profile file: %v", err)
	}
	registry, err := profile.Load(path)
	if err != nil {
		t.Fatalf("Failed to load profiles: %v", err)
	}

	cliLogger := logger.NewCliLogger("info", filepath.Join(t.TempDir(), "test.log"), false)
	out := &bytes.Buffer{}
	client := simulator.NewClient(baseUrl, 5*time.Second, cliLogger.ApiLog)

	return &testShell{
		shell:    NewShell(registry, client, out, 10*time.Millisecond, &cliLogger),
		registry: registry,
		out:      out,
	}
}

func (ts *testShell) run(t *testing.T, input string) string {
	t.Helper()
	reader := NewPlainReader(strings.NewReader(input), ts.out, "simctl > ")
	if err := ts.shell.Run(context.Background(), reader); err != nil {
		t.Fatalf("Shell failed: %v", err)
	}
	return ts.out.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("Expected output to contain %q, got:\n%s", want, output)
	}
}

func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Fatalf("Expected output not to contain %q, got:\n%s", unwanted, output)
	}
}

func TestShellSwitchAndShowConfig(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	output := ts.run(t, "switch heavy\nshowconfig\nexit\n")

	assertContains(t, output, "✅ Switched to profile 'heavy'")
	assertContains(t, output, "active profile: 'heavy'")
	assertContains(t, output, "  plmn: 466-92\n")
	assertContains(t, output, "  dnn: enterprise\n")
	assertContains(t, output, "  slice: SST=2, SD=112233\n")
	assertContains(t, output, "  number of UEs: 1000\n")
	assertContains(t, output, "  gNBs: 4\n")
	assertContains(t, output, "  rate: 50\n")
	assertNotContains(t, output, "active profile: 'default'")
	assertContains(t, output, "Bye!")
	assert.Equal(t, "heavy", ts.registry.CurrentName())
}

func TestShellSwitchNotFound(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	output := ts.run(t, "switch nonexistent\nshowconfig\n")

	assertContains(t, output, "profile 'nonexistent' not found. Use 'listprofiles' to view available ones.")
	assertContains(t, output, "active profile: 'default'")
	assert.Equal(t, "default", ts.registry.CurrentName())
}

func TestShellListProfiles(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	output := ts.run(t, "listprofiles\nswitch heavy\nlistprofiles\n")

	assertContains(t, output, "Available profiles:\n  - default ← current\n  - heavy\n")
	assertContains(t, output, "Available profiles:\n  - default\n  - heavy ← current\n")
}

func TestShellInit(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL+"/core-simulator/v1")
	output := ts.run(t, "init\n")

	requests := fake.recorded()
	assert.Equal(t, 1, len(requests))
	assert.Equal(t, http.MethodPost, requests[0].method)
	assert.Equal(t, "/core-simulator/v1/configure", requests[0].path)

	var payload struct {
		NumOfUe     int               `json:"numOfUe"`
		ArrivalRate int               `json:"arrivalRate"`
		NumOfGnb    int               `json:"numOfgNB"`
		Dnn         string            `json:"dnn"`
		Plmn        map[string]string `json:"plmn"`
	}
	if err := json.Unmarshal(requests[0].body, &payload); err != nil {
		t.Fatalf("Failed to decode configure body: %v", err)
	}
	assert.Equal(t, 10, payload.NumOfUe)
	assert.Equal(t, 1, payload.ArrivalRate)
	assert.Equal(t, 1, payload.NumOfGnb)
	assert.Equal(t, "internet", payload.Dnn)
	assert.Equal(t, map[string]string{"mcc": "208", "mnc": "93"}, payload.Plmn)

	assertContains(t, output, "POST "+server.URL+"/core-simulator/v1/configure → 200\n")
	assertContains(t, output, `{"state":"running"}`)
}

func TestShellInitUsesSwitchedProfile(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	ts.run(t, "switch heavy\ninit\n")

	requests := fake.recorded()
	assert.Equal(t, 1, len(requests))

	var payload struct {
		NumOfUe int               `json:"numOfUe"`
		Plmn    map[string]string `json:"plmn"`
	}
	if err := json.Unmarshal(requests[0].body, &payload); err != nil {
		t.Fatalf("Failed to decode configure body: %v", err)
	}
	assert.Equal(t, 1000, payload.NumOfUe)
	assert.Equal(t, map[string]string{"mcc": "466", "mnc": "92"}, payload.Plmn)
}

var testShellRequestCases = []struct {
	name   string
	input  string
	method string
	path   string
}{
	{name: "start", input: "start\n", method: http.MethodPost, path: "/start"},
	{name: "stop", input: "stop\n", method: http.MethodPost, path: "/stop"},
	{name: "status", input: "status\n", method: http.MethodGet, path: "/status"},
}

func TestShellRequests(t *testing.T) {
	for _, testCase := range testShellRequestCases {
		t.Run(testCase.name, func(t *testing.T) {
			fake := &fakeSimulator{}
			server := httptest.NewServer(fake)
			defer server.Close()

			ts := newTestShell(t, server.URL)
			output := ts.run(t, testCase.input)

			requests := fake.recorded()
			assert.Equal(t, 1, len(requests))
			assert.Equal(t, testCase.method, requests[0].method)
			assert.Equal(t, testCase.path, requests[0].path)
			assert.Equal(t, 0, len(requests[0].body))
			assertContains(t, output, testCase.method+" "+server.URL+testCase.path+" → 200\n")
		})
	}
}

func TestShellTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseUrl := server.URL
	server.Close()

	ts := newTestShell(t, baseUrl)
	output := ts.run(t, "status\nshowconfig\nexit\n")

	assertContains(t, output, "request failed: ")
	assertContains(t, output, "active profile: 'default'")
	assertContains(t, output, "Bye!")
}

func interruptOnRequest(fake *fakeSimulator, ts *testShell, n int) {
	var mu sync.Mutex
	var cancelLoop context.CancelFunc

	ts.shell.session.notifyInterrupt = func(ctx context.Context) (context.Context, context.CancelFunc) {
		loopCtx, cancel := context.WithCancel(ctx)
		mu.Lock()
		cancelLoop = cancel
		mu.Unlock()
		return loopCtx, cancel
	}
	fake.onRequest = func(count int) {
		if count != n {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if cancelLoop != nil {
			cancelLoop()
		}
	}
}

func TestShellLoopInterruptedDuringRequest(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	interruptOnRequest(fake, ts, 2)
	output := ts.run(t, "loop\nshowconfig\n")

	requests := fake.recorded()
	assert.Equal(t, 2, len(requests))
	for _, request := range requests {
		assert.Equal(t, "/status", request.path)
	}
	assertContains(t, output, "Looping status check (Ctrl+C to stop)...")
	assert.Equal(t, 2, strings.Count(output, "GET "+server.URL+"/status → 200"))
	assertContains(t, output, "Stopped status loop.")
	assertContains(t, output, "active profile: 'default'")
}

func TestShellLoopInterruptedDuringFirstRequest(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	interruptOnRequest(fake, ts, 1)
	output := ts.run(t, "loop\nlistprofiles\n")

	assert.Equal(t, 1, len(fake.recorded()))
	assertContains(t, output, "Stopped status loop.")
	assertContains(t, output, "Available profiles:")
}

func TestShellLoopInterruptedDuringWait(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	ts.shell.session.loopInterval = time.Hour

	interrupted := make(chan struct{})
	ts.shell.session.notifyInterrupt = func(ctx context.Context) (context.Context, context.CancelFunc) {
		loopCtx, cancel := context.WithCancel(ctx)
		go func() {
			select {
			case <-interrupted:
				cancel()
			case <-loopCtx.Done():
			}
		}()
		return loopCtx, cancel
	}
	fake.onRequest = func(count int) {
		if count == 1 {
			go func() {
				time.Sleep(20 * time.Millisecond)
				close(interrupted)
			}()
		}
	}

	output := ts.run(t, "loop\nshowconfig\n")

	assert.Equal(t, 1, len(fake.recorded()))
	assertContains(t, output, "Stopped status loop.")
	assertContains(t, output, "active profile: 'default'")
}

func TestShellUnknownCommand(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	output := ts.run(t, "bogus arg\n\n   \nshowconfig\n")

	assertContains(t, output, "Unknown command: bogus arg. Type 'help'.\n")
	assertContains(t, output, "active profile: 'default'")
	assert.Equal(t, 0, len(fake.recorded()))
}

func TestShellLongInputLine(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	long := strings.Repeat("x", 70000)
	output := ts.run(t, long+"\nshowconfig\n")

	assertContains(t, output, "Unknown command: "+long+". Type 'help'.\n")
	assertContains(t, output, "active profile: 'default'")
}

func TestPlainReaderLineEndings(t *testing.T) {
	reader := NewPlainReader(strings.NewReader("status\r\nstop\nstart"), io.Discard, "")

	for _, expected := range []string{"status", "stop", "start"} {
		line, err := reader.ReadLine()
		assert.Equal(t, nil, err)
		assert.Equal(t, expected, line)
	}
	_, err := reader.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestShellEndOfInput(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	output := ts.run(t, "showconfig")

	assertContains(t, output, "Welcome to simctl. Type help or ? to list commands.")
	assertContains(t, output, "active profile: 'default'")
	assert.Equal(t, true, strings.HasSuffix(output, "Bye!\n"))
}

func TestShellExitStopsReading(t *testing.T) {
	fake := &fakeSimulator{}
	server := httptest.NewServer(fake)
	defer server.Close()

	ts := newTestShell(t, server.URL)
	output := ts.run(t, "quit\nstatus\n")

	assertContains(t, output, "Bye!")
	assert.Equal(t, 0, len(fake.recorded()))
}

func TestShellHelp(t *testing.T) {
	ts := newTestShell(t, "http://127.0.0.1:1")
	output := ts.run(t, "help\nhelp switch\n? loop\nhelp nothing\n")

	assertContains(t, output, "Documented commands (type help <topic>):")
	for _, name := range []string{"showconfig", "listprofiles", "init", "start", "stop", "status", "exit", "quit"} {
		assertContains(t, output, "  "+name)
	}
	assertContains(t, output, "switch <name>\n  Switch to a different simulation profile\n")
	assertContains(t, output, "loop\n  Continuously check /status every 3 seconds\n")
	assertContains(t, output, "*** No help on nothing\n")
}

var testSplitCommandCases = []struct {
	name        string
	line        string
	expectedCmd string
	expectedArg string
}{
	{name: "no-argument", line: "status", expectedCmd: "status", expectedArg: ""},
	{name: "argument", line: "switch heavy", expectedCmd: "switch", expectedArg: "heavy"},
	{name: "extra-spaces", line: "switch \t heavy  ", expectedCmd: "switch", expectedArg: "heavy"},
	{name: "argument-with-space", line: "switch my profile", expectedCmd: "switch", expectedArg: "my profile"},
}

func TestSplitCommand(t *testing.T) {
	for _, testCase := range testSplitCommandCases {
		t.Run(testCase.name, func(t *testing.T) {
			cmd, arg := splitCommand(testCase.line)
			assert.Equal(t, testCase.expectedCmd, cmd)
			assert.Equal(t, testCase.expectedArg, arg)
		})
	}
}
