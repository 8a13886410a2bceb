package shell

import (
	"context"
	"time"
)

// handlerFunc runs one command. It returns true when the shell should stop.
type handlerFunc func(ctx context.Context, s *Session, arg string) bool

type command struct {
	name    string
	usage   string
	doc     string
	handler handlerFunc
}

func commandTable() []command {
	return []command{
		{name: "showconfig", usage: "showconfig", doc: "Show the active simulation profile", handler: showConfig},
		{name: "listprofiles", usage: "listprofiles", doc: "List all available profiles", handler: listProfiles},
		{name: "switch", usage: "switch <name>", doc: "Switch to a different simulation profile", handler: switchProfile},
		{name: "init", usage: "init", doc: "Send POST /configure to configure the simulation", handler: initSimulation},
		{name: "start", usage: "start", doc: "Send POST /start to start the simulation", handler: startSimulation},
		{name: "stop", usage: "stop", doc: "Send POST /stop to stop the simulation", handler: stopSimulation},
		{name: "status", usage: "status", doc: "Send GET /status to check current simulation status", handler: simulationStatus},
		{name: "loop", usage: "loop", doc: "Continuously check /status every 3 seconds", handler: statusLoop},
		{name: "exit", usage: "exit", doc: "Exit the shell", handler: exitShell},
		{name: "quit", usage: "quit", doc: "Exit the shell", handler: exitShell},
	}
}

func showConfig(_ context.Context, s *Session, _ string) bool {
	profile := s.registry.Current()
	s.printf("active profile: '%s'\n", s.registry.CurrentName())
	s.printf("  plmn: %s-%s\n", profile.PlmnId.Mcc, profile.PlmnId.Mnc)
	s.printf("  dnn: %s\n", profile.Dnn)
	s.printf("  slice: SST=%d, SD=%s\n", profile.Snssai.Sst, profile.Snssai.Sd)
	s.printf("  number of UEs: %d\n", profile.NumUe)
	s.printf("  gNBs: %d\n", profile.GNBs)
	s.printf("  rate: %d\n", profile.Rate)
	return false
}

func listProfiles(_ context.Context, s *Session, _ string) bool {
	s.println("Available profiles:")
	for _, name := range s.registry.Names() {
		if name == s.registry.CurrentName() {
			s.printf("  - %s ← current\n", name)
		} else {
			s.printf("  - %s\n", name)
		}
	}
	return false
}

func switchProfile(_ context.Context, s *Session, name string) bool {
	if name == "" {
		s.println("usage: switch <name>")
		return false
	}
	if !s.registry.Switch(name) {
		s.printf("profile '%s' not found. Use 'listprofiles' to view available ones.\n", name)
		return false
	}
	s.printf("✅ Switched to profile '%s'\n", name)
	return false
}

func initSimulation(_ context.Context, s *Session, _ string) bool {
	s.report(s.client.Configure(s.registry.Current()))
	return false
}

func startSimulation(_ context.Context, s *Session, _ string) bool {
	s.report(s.client.Start())
	return false
}

func stopSimulation(_ context.Context, s *Session, _ string) bool {
	s.report(s.client.Stop())
	return false
}

func simulationStatus(_ context.Context, s *Session, _ string) bool {
	s.report(s.client.Status())
	return false
}

// statusLoop polls status until interrupted. A request in flight when the
// interrupt arrives completes before the loop ends.
func statusLoop(ctx context.Context, s *Session, _ string) bool {
	s.println("Looping status check (Ctrl+C to stop)...")

	loopCtx, cancel := s.notifyInterrupt(ctx)
	defer cancel()

loop:
	for {
		s.report(s.client.Status())
		if loopCtx.Err() != nil {
			break
		}

		timer := time.NewTimer(s.loopInterval)
		select {
		case <-loopCtx.Done():
			timer.Stop()
			break loop
		case <-timer.C:
		}
	}

	s.println("\nStopped status loop.")
	return false
}

func exitShell(_ context.Context, s *Session, _ string) bool {
	s.println("Bye!")
	return true
}
