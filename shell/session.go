package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/HanHongChen/cnsim-ctl/profile"
	"github.com/HanHongChen/cnsim-ctl/simulator"
)

// Session is the state every command handler works on. Only the registry's
// current profile changes over its lifetime.
type Session struct {
	registry *profile.Registry
	client   *simulator.Client
	out      io.Writer

	loopInterval time.Duration

	// notifyInterrupt returns a context that is canceled on interrupt.
	notifyInterrupt func(ctx context.Context) (context.Context, context.CancelFunc)
}

func newSession(registry *profile.Registry, client *simulator.Client, out io.Writer, loopInterval time.Duration) *Session {
	return &Session{
		registry: registry,
		client:   client,
		out:      out,

		loopInterval: loopInterval,

		notifyInterrupt: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt)
		},
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...interface{}) {
	_, _ = fmt.Fprintln(s.out, args...)
}

// report prints the outcome of one api call. A failed call is printed and
// otherwise ignored.
func (s *Session) report(result *simulator.Result, err error) {
	if err != nil {
		var requestErr *simulator.RequestError
		if errors.As(err, &requestErr) {
			err = requestErr.Err
		}
		s.printf("request failed: %v\n", err)
		return
	}

	s.printf("%s %s → %d\n", result.Method, result.Url, result.StatusCode)
	s.println(string(result.Body))
}
