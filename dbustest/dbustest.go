// Package dbustest provides test doubles for code that talks to
// ModemManager and NetworkManager over DBus.
//
// [Fake] is an in-memory bus backend that serves a scripted tree of
// objects. [New] runs a private dbus-daemon for end-to-end tests,
// with mock services exported on raw godbus connections.
package dbustest

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danderson/cellnet/bus"
	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"
)

//go:embed dbus.config
var dbusConfig string

// Available reports whether the required binaries are available for
// testing against a real DBus server.
func Available() bool {
	_, err := exec.LookPath("dbus-daemon")
	if err != nil {
		return false
	}
	_, err = exec.LookPath("dbus-monitor")
	return err == nil
}

// Bus is an isolated DBus instance for tests.
type Bus struct {
	bus  *exec.Cmd
	mon  *exec.Cmd
	lw   *logWriter
	sock string

	stop       chan struct{}
	busStopped chan struct{}
	monStopped chan struct{}
}

// New launches a DBus instance dedicated to the calling test.
//
// If [Available] is false, New calls t.Skip to skip the calling test.
//
// If logMonitor is true, the returned bus logs all bus messages using
// t.Logf.
func New(t *testing.T, logMonitor bool) *Bus {
	if !Available() {
		t.Skip("dbus-daemon and dbus-monitor not available, cannot run test bus")
	}
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "bus.config")
	if err := os.WriteFile(cfgPath, []byte(dbusConfig), 0600); err != nil {
		t.Fatal(err)
	}

	ret := &Bus{
		sock:       filepath.Join(tmp, "bus.sock"),
		stop:       make(chan struct{}),
		busStopped: make(chan struct{}),
		monStopped: make(chan struct{}),
	}

	ret.bus = exec.Command("dbus-daemon", "--config-file="+cfgPath, "--nofork", "--nopidfile", "--nosyslog", "--address="+ret.Address())
	ret.bus.Stdout = os.Stdout
	ret.bus.Stderr = os.Stderr
	if err := ret.bus.Start(); err != nil {
		t.Fatalf("starting bus: %v", err)
	}
	t.Cleanup(ret.close)

	go func() {
		defer close(ret.busStopped)
		err := ret.bus.Wait()
		select {
		case <-ret.stop:
		default:
			panic(fmt.Errorf("bus stopped prematurely: %w", err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for ctx.Err() == nil {
		if _, err := os.Stat(ret.sock); err == nil {
			break
		} else if errors.Is(err, fs.ErrNotExist) {
			time.Sleep(10 * time.Millisecond)
			continue
		} else if err != nil {
			t.Fatalf("waiting for bus socket: %v", err)
		}
	}
	if err := ctx.Err(); err != nil {
		t.Fatalf("bus failed to start: %v", err)
	}

	if logMonitor {
		ret.lw = newLogWriter(t)
		ret.mon = exec.Command("dbus-monitor", "--address", ret.Address())
		ret.mon.Stdout = ret.lw
		ret.mon.Stderr = ret.lw
		if err := ret.mon.Start(); err != nil {
			t.Fatalf("starting monitor: %v", err)
		}
		go func() {
			defer close(ret.monStopped)
			err := ret.mon.Wait()
			select {
			case <-ret.stop:
			default:
				panic(fmt.Errorf("dbus-monitor stopped prematurely: %w", err))
			}
			ret.lw.Flush()
		}()
		if err := ret.lw.WaitForFirstLine(ctx); err != nil {
			t.Fatalf("waiting for monitor: %v", err)
		}
	} else {
		close(ret.monStopped)
	}

	return ret
}

// close asks the bus and monitor to exit, and kills them if they
// don't.
func (b *Bus) close() {
	close(b.stop)
	unix.Kill(b.bus.Process.Pid, unix.SIGTERM)
	if b.mon != nil {
		unix.Kill(b.mon.Process.Pid, unix.SIGTERM)
	}
	timeout := time.After(10 * time.Second)
	select {
	case <-b.busStopped:
	case <-timeout:
		log.Print("timed out waiting for bus to stop")
		b.bus.Process.Kill()
	}
	select {
	case <-b.monStopped:
	case <-timeout:
		log.Print("timed out waiting for dbus-monitor to stop")
		b.mon.Process.Kill()
	}
}

// Socket returns the path to the bus's unix socket.
func (b *Bus) Socket() string {
	return b.sock
}

// Address returns the bus address of the test bus.
func (b *Bus) Address() string {
	return "unix:path=" + b.sock
}

// MustConn returns a connection to the bus. It causes an immediate
// test failure with t.Fatal if it is unable to connect. The
// connection is closed when the test ends.
func (b *Bus) MustConn(t *testing.T, opts ...bus.Option) *bus.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ret, err := bus.Dial(ctx, b.Address(), opts...)
	if err != nil {
		t.Fatalf("connecting to test bus: %v", err)
	}
	t.Cleanup(func() { ret.Close() })
	return ret
}

// MustRawConn returns a godbus connection to the bus, for exporting
// mock services. If name is not empty, the connection claims it as
// its well-known name.
func (b *Bus) MustRawConn(t *testing.T, name string) *dbus.Conn {
	t.Helper()
	ret, err := dbus.Connect(b.Address())
	if err != nil {
		t.Fatalf("connecting to test bus: %v", err)
	}
	t.Cleanup(func() { ret.Close() })
	if name == "" {
		return ret
	}
	reply, err := ret.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		t.Fatalf("requesting name %s: %v", name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		t.Fatalf("requesting name %s: not primary owner (reply %d)", name, reply)
	}
	return ret
}

type logWriter struct {
	output chan struct{}
	t      *testing.T

	mu  sync.Mutex
	buf bytes.Buffer
}

func newLogWriter(t *testing.T) *logWriter {
	return &logWriter{
		output: make(chan struct{}, 1),
		t:      t,
	}
}

func (l *logWriter) out(s string) {
	l.t.Log(s)
}

func (l *logWriter) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushComplete()
	if l.buf.Len() > 0 {
		l.out(l.buf.String())
	}
	l.buf.Reset()
}

func (l *logWriter) Write(bs []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Write(bs)
	l.flushComplete()
	return len(bs), nil
}

// flushComplete logs every complete message in the buffer. A message
// ends where the next line starts with a message type.
func (l *logWriter) flushComplete() {
	bs := l.buf.Bytes()
	total := 0
	for {
		i := bytes.IndexByte(bs, '\n')
		if i == -1 {
			return
		}
		total += i
		bs = bs[i+1:]
		if !bytes.HasPrefix(bs, []byte("method ")) && !bytes.HasPrefix(bs, []byte("signal ")) && !bytes.HasPrefix(bs, []byte("error ")) {
			total++
			continue
		}

		out := l.buf.Next(total)
		l.out(string(out))
		l.buf.Next(1)
		select {
		case l.output <- struct{}{}:
		default:
		}
		total = 0
		bs = l.buf.Bytes()
	}
}

func (l *logWriter) WaitForFirstLine(ctx context.Context) error {
	select {
	case <-l.output:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
