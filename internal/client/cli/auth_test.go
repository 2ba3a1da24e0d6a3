package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspocket/internal/client/repositories/users"
	"campuspocket/internal/client/services"
	"campuspocket/internal/client/session"
	"campuspocket/internal/client/store"
	"campuspocket/internal/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewZerologLogger(io.Discard, false)
	sess := session.NewManager(db, users.NewSQLiteRepository(db), log)

	return &App{
		authService:    services.NewAuthService(db, sess, log),
		profileService: services.NewProfileService(db, log),
		log:            log,
		reader:         bufio.NewReader(strings.NewReader("")),
		db:             db,
	}
}

// scriptInput replaces the interactive input seams with canned answers.
func scriptInput(t *testing.T, answers []string, password string) {
	t.Helper()

	origText, origPassword, origPrintln := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, printlnFn = origText, origPassword, origPrintln
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		require.Less(t, i, len(answers), "unexpected prompt: %s", prompt)
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(w io.Writer) (string, error) { return password, nil }
	printlnFn = func(msg string) {}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "A", "B", "a@b.com", "12345", "X", ""}, "pw1")
	require.NoError(t, a.Register(ctx))
	assert.False(t, a.isLoggedIn(), "registration alone does not log in")

	scriptInput(t, []string{"alice"}, "pw1")
	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, int64(1), a.user.ID)
}

func TestApp_LoginWrongPassword(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "A", "B", "a@b.com", "12345", "X", ""}, "pw1")
	require.NoError(t, a.Register(ctx))

	scriptInput(t, []string{"alice"}, "wrong")
	require.Error(t, a.Login(ctx))
	assert.False(t, a.isLoggedIn())
}

func TestApp_RegisterDuplicateReportsError(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "A", "B", "a@b.com", "12345", "X", ""}, "pw1")
	require.NoError(t, a.Register(ctx))

	scriptInput(t, []string{"alice", "C", "D", "c@d.com", "6789", "Z", ""}, "pw2")
	require.Error(t, a.Register(ctx))
}

func TestApp_EditProfileKeepsUnchangedFields(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "A", "B", "a@b.com", "12345", "X", ""}, "pw1")
	require.NoError(t, a.Register(ctx))

	scriptInput(t, []string{"alice"}, "pw1")
	require.NoError(t, a.Login(ctx))

	// Empty answers keep every field except the address.
	scriptInput(t, []string{"", "", "", "", "Y", ""}, "")
	require.NoError(t, a.EditProfile(ctx))

	assert.Equal(t, "Y", a.user.Address)
	assert.Equal(t, "A", a.user.FirstName)
	assert.Equal(t, "a@b.com", a.user.Email)
}

func TestApp_LogoutForgetsSession(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "A", "B", "a@b.com", "12345", "X", ""}, "pw1")
	require.NoError(t, a.Register(ctx))

	scriptInput(t, []string{"alice"}, "pw1")
	require.NoError(t, a.Login(ctx))
	require.NotNil(t, a.authService.Restore(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Nil(t, a.authService.Restore(ctx))
}
