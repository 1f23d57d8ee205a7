package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Products(ctx context.Context) error       { return f.record("products") }
func (f *fakeExec) FilterProducts(ctx context.Context) error { return f.record("filter") }
func (f *fakeExec) AddToCart(ctx context.Context) error      { return f.record("add") }
func (f *fakeExec) RemoveFromCart(ctx context.Context) error { return f.record("remove") }
func (f *fakeExec) ShowCart(ctx context.Context) error       { return f.record("cart") }
func (f *fakeExec) Register(ctx context.Context) error       { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Recover(ctx context.Context) error      { return f.record("recover") }
func (f *fakeExec) Profile(ctx context.Context) error      { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error  { return f.record("editprofile") }
func (f *fakeExec) SetImage(ctx context.Context) error     { return f.record("setimage") }
func (f *fakeExec) Users(ctx context.Context) error        { return f.record("users") }
func (f *fakeExec) DeleteUser(ctx context.Context) error   { return f.record("deluser") }
func (f *fakeExec) EditProduct(ctx context.Context) error  { return f.record("editproduct") }
func (f *fakeExec) People(ctx context.Context) error       { return f.record("people") }
func (f *fakeExec) AddPerson(ctx context.Context) error    { return f.record("addperson") }
func (f *fakeExec) EditPerson(ctx context.Context) error   { return f.record("editperson") }
func (f *fakeExec) DeletePerson(ctx context.Context) error { return f.record("delperson") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"products",
		"add",
		"cart",
		"login",
		"help",
		"profile",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"products", "add", "cart", "login", "profile", "logout"}
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

func TestRunREPL_ProfileRequiresLogin(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("profile\neditprofile\nsetimage\nquit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_AdminCommandsAreGated(t *testing.T) {
	silencePrintln(t)

	script := "users\ndeluser\neditproduct\npeople\naddperson\neditperson\ndelperson\nexit\n"

	exec := &fakeExec{loggedIn: true, admin: false}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(script)))
	if len(exec.calls) != 0 {
		t.Fatalf("non-admin reached admin commands: %v", exec.calls)
	}

	admin := &fakeExec{loggedIn: true, admin: true}
	runREPL(context.Background(), admin, func() string { return "" }, bufio.NewScanner(strings.NewReader(script)))
	if len(admin.calls) != 7 {
		t.Fatalf("admin calls: %v", admin.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("products\n")))

	if len(exec.calls) != 1 {
		t.Fatalf("calls: %v", exec.calls)
	}
}
