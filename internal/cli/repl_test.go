package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Sectors(ctx context.Context) error {
	f.calls = append(f.calls, "sectors")
	return nil
}
func (f *fakeExec) Departments(ctx context.Context, sectorID string) error {
	f.calls = append(f.calls, "departments")
	f.arg = sectorID
	return nil
}
func (f *fakeExec) Visitors(ctx context.Context, query string) error {
	f.calls = append(f.calls, "visitors")
	f.arg = query
	return nil
}
func (f *fakeExec) Visits(ctx context.Context) error {
	f.calls = append(f.calls, "visits")
	return nil
}
func (f *fakeExec) CheckIn(ctx context.Context) error {
	f.calls = append(f.calls, "checkin")
	return nil
}
func (f *fakeExec) CheckOut(ctx context.Context, id string) error {
	f.calls = append(f.calls, "checkout")
	f.arg = id
	return nil
}
func (f *fakeExec) Audit(ctx context.Context, action string) error {
	f.calls = append(f.calls, "audit")
	f.arg = action
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"sectors",
		"visitors maria",
		"visits",
		"checkin",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "sectors", "visitors", "visits", "checkin", "logout"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_CheckoutPassesID(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(strings.NewReader("checkout 42\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if exec.arg != "42" {
		t.Fatalf("id not forwarded, got %q", exec.arg)
	}
}

func TestRunREPL_CheckoutWithoutIDDoesNotDispatch(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(strings.NewReader("checkout\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected dispatch: %v", exec.calls)
	}
}

func TestRunREPL_EOFExitsLoop(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}
