package browser

import (
	"context"
	"strings"
	"sync"
	"testing"
)

type recordingUsernameView struct {
	mu       sync.Mutex
	rendered [][]string
}

func (v *recordingUsernameView) RenderUsernames(usernames []string) {
	v.mu.Lock()
	v.rendered = append(v.rendered, usernames)
	v.mu.Unlock()
}

func (v *recordingUsernameView) latest() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.rendered) == 0 {
		return nil
	}
	return v.rendered[len(v.rendered)-1]
}

func TestUsernames_LoadRendersList(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	srv.usernames = []string{"alice", "bob"}
	view := &recordingUsernameView{}
	u := NewUsernames(srv.client(), view, nil)

	if err := u.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := view.latest(); !equalStrings(got, []string{"alice", "bob"}) {
		t.Fatalf("rendered = %v", got)
	}
}

func TestUsernames_AddReloadsList(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	srv.usernames = []string{"alice"}
	view := &recordingUsernameView{}
	u := NewUsernames(srv.client(), view, nil)

	if err := u.Add(context.Background(), "bob"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := view.latest(); !equalStrings(got, []string{"alice", "bob"}) {
		t.Fatalf("rendered = %v after add", got)
	}
}

func TestUsernames_DeleteReloadsList(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	srv.usernames = []string{"alice", "bob"}
	view := &recordingUsernameView{}
	u := NewUsernames(srv.client(), view, nil)

	if err := u.Delete(context.Background(), "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := view.latest(); !equalStrings(got, []string{"bob"}) {
		t.Fatalf("rendered = %v after delete", got)
	}
}

func TestUsernames_AddBlankIsValidationError(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	n := &recordingNotifier{}
	u := NewUsernames(srv.client(), nil, n)

	err := u.Add(context.Background(), "   ")
	if !IsValidationError(err) {
		t.Fatalf("want Validation error, got %v", err)
	}
	if n.last() == "" {
		t.Error("validation failure not surfaced")
	}
}

func TestUsernames_ServerFailureSurfacesMessage(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	srv.failUsernames = "scraper offline"
	n := &recordingNotifier{}
	view := &recordingUsernameView{}
	u := NewUsernames(srv.client(), view, n)

	err := u.Add(context.Background(), "bob")
	if !IsServerError(err) {
		t.Fatalf("want Server error, got %v", err)
	}
	if !strings.Contains(n.last(), "scraper offline") {
		t.Errorf("server message not surfaced, got %q", n.last())
	}
	if view.latest() != nil {
		t.Error("failed add still re-rendered the list")
	}
}

func TestUsernames_LoadFailureIsLogOnly(t *testing.T) {
	t.Parallel()
	srv := newArchiveServer(t)
	srv.failUsernames = "db locked"
	n := &recordingNotifier{}
	u := NewUsernames(srv.client(), nil, n)

	if err := u.Load(context.Background()); err == nil {
		t.Fatal("Load succeeded against failing backend")
	}
	if n.last() != "" {
		t.Errorf("load failure reached the notifier: %q", n.last())
	}
}
