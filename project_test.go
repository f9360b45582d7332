package teamtrack

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gr-oleg/teamtrack/internal/logging"
	"github.com/gr-oleg/teamtrack/types"
)

func TestProjectAddDeveloper(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	website := team.NewProject("Website", 2)

	require.NoError(t, website.AddDeveloper(alice))

	require.Len(t, website.Roster(), 1)
	require.Same(t, alice, website.Roster()[0])
	require.Contains(t, alice.AssignedProjects(), "Website")
}

func TestProjectAddDeveloperTwice(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	team := newTestTeam(t, WithLogger(logging.NewSlog(slog.New(handler))))

	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	website := team.NewProject("Website", 2)

	require.NoError(t, website.AddDeveloper(alice))
	require.NoError(t, website.AddDeveloper(alice))

	// The roster accumulates the duplicate even though the developer-side
	// link rejected it.
	require.Len(t, website.Roster(), 2)
	require.Len(t, alice.AssignedProjects(), 1)

	// The rejection is reported, not propagated.
	require.Contains(t, buf.String(), "developer exists")
	require.Contains(t, buf.String(), "Alice Smith")
}

func TestProjectAddDeveloperLimitEnforced(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.EnforceRosterLimit = true
	team, err := New(&cfg)
	require.NoError(t, err)

	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	bob := team.NewDeveloper(PersonInfo{FullName: "Bob Jones"})
	carol := team.NewDeveloper(PersonInfo{FullName: "Carol White"})
	website := team.NewProject("Website", 2)

	require.NoError(t, website.AddDeveloper(alice))
	require.NoError(t, website.AddDeveloper(bob))

	err = website.AddDeveloper(carol)
	require.ErrorIs(t, err, ErrRosterFull)
	require.Len(t, website.Roster(), 2)

	// The rejected developer's own list is untouched.
	require.Empty(t, carol.AssignedProjects())
}

func TestProjectRemoveDeveloper(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	website := team.NewProject("Website", 2)

	require.NoError(t, website.AddDeveloper(alice))
	require.NoError(t, website.RemoveDeveloper(alice))

	require.Empty(t, website.Roster())
	require.NotContains(t, alice.AssignedProjects(), "Website")
}

func TestProjectRemoveDeveloperNotFound(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	website := team.NewProject("Website", 2)

	err := website.RemoveDeveloper(alice)
	require.ErrorIs(t, err, ErrDeveloperNotFound)
}

func TestProjectRemoveDeveloperCancelsAppointmentFirst(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	alice := team.NewDeveloper(PersonInfo{FullName: "Alice Smith"})
	website := team.NewProject("Website", 2)

	// Developer tracks the project but was never placed on the roster.
	require.NoError(t, alice.Assign(website))

	err := website.RemoveDeveloper(alice)
	require.ErrorIs(t, err, ErrDeveloperNotFound)

	// The appointment was still cancelled before the roster lookup failed.
	require.Empty(t, alice.AssignedProjects())
}

func TestProjectTasks(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	website := team.NewProject("Website", 2)

	require.Empty(t, website.Tasks())

	website.AddTask(types.Task{Title: "setup CI"})
	website.AddTask(types.Task{Title: "write landing page", Done: true})

	tasks := website.Tasks()
	require.Len(t, tasks, 2)
	require.Equal(t, "setup CI", tasks[0].Title)
}

func TestProjectString(t *testing.T) {
	t.Parallel()

	team := newTestTeam(t)
	website := team.NewProject("Website", 2)
	require.Equal(t, "Project Website", website.String())
}
