package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "katasync/pkg/errors"
	"katasync/pkg/logger"
	"katasync/pkg/materializer"
	"katasync/pkg/models"
	"katasync/pkg/readme"
	"katasync/pkg/storage"
	"katasync/pkg/ui"
	"katasync/pkg/vcs"
)

type fakeProfiles struct {
	profile *models.UserProfile
	err     error
	calls   []string
}

func (f *fakeProfiles) FetchUser(_ context.Context, username string) (*models.UserProfile, error) {
	f.calls = append(f.calls, username)
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type harness struct {
	store     *storage.MemStore
	committer *vcs.Recorder
	sink      *ui.Recorder
	profiles  *fakeProfiles
	log       *logger.TestLogger
	syncer    *Syncer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:     storage.NewMemStore("/katas"),
		committer: vcs.NewRecorder(),
		sink:      ui.NewRecorder(),
		profiles: &fakeProfiles{profile: &models.UserProfile{
			Username: "jdoe",
			Clan:     "gophers",
		}},
		log: logger.NewTestLogger(),
	}

	m, err := materializer.New(materializer.Options{
		BaseDir:   "/katas",
		Store:     h.store,
		Committer: h.committer,
		Sink:      h.sink,
		Logger:    h.log,
	})
	require.NoError(t, err)

	p, err := readme.NewPublisher(readme.Options{
		BaseDir:   "/katas",
		Store:     h.store,
		Committer: h.committer,
		Sink:      h.sink,
		Logger:    h.log,
	})
	require.NoError(t, err)

	h.syncer = New(m, p, h.profiles, h.log)
	return h
}

func TestSyncChallengesEndToEnd(t *testing.T) {
	h := newHarness(t)

	challenges := []models.Challenge{{
		Level:     "4kyu",
		Title:     "foo",
		Solutions: []models.Solution{{Language: "Python", Code: "x=1"}},
	}}
	require.NoError(t, h.syncer.SyncChallenges(context.Background(), challenges))

	content, ok := h.store.Content("/katas/4kyu/foo_v1.py")
	require.True(t, ok)
	assert.Equal(t, "x=1\n", content)
	assert.Equal(t, []vcs.CommitCall{{Path: "/katas/4kyu/foo_v1.py", Message: "Completed foo"}}, h.committer.Calls())
}

func TestRun(t *testing.T) {
	h := newHarness(t)

	challenges := []models.Challenge{
		{Level: "8kyu", Title: "a", Solutions: []models.Solution{{Language: "Go", Code: "package a"}}},
		{Level: "8kyu", Title: "b", Solutions: []models.Solution{{Language: "Go", Code: "package b"}, {Language: "Go", Code: "package b0"}}},
	}
	require.NoError(t, h.syncer.Run(context.Background(), challenges, "jdoe"))

	wantCommits := []vcs.CommitCall{
		{Path: "/katas/8kyu/a_v1.go", Message: "Completed a"},
		{Path: "/katas/8kyu/b_v1.go", Message: "Completed b"},
		{Path: "/katas/8kyu/b_v2.go", Message: "Completed b"},
		{Path: "/katas/README.md", Message: "Added README.md file!"},
	}
	if diff := cmp.Diff(wantCommits, h.committer.Calls()); diff != "" {
		t.Errorf("commits mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"jdoe"}, h.profiles.calls)

	got := h.syncer.Result()
	assert.Equal(t, 2, got.Challenges)
	assert.Equal(t, 1, got.LevelsCreated)
	assert.Equal(t, 3, got.FilesWritten)
	assert.Equal(t, 0, got.FilesSkipped)
	assert.True(t, got.ReadmeUpdated)
	assert.True(t, h.log.HasMessage("Sync finished"))

	// a second run only touches the README
	require.NoError(t, h.syncer.Run(context.Background(), challenges, "jdoe"))
	calls := h.committer.Calls()
	require.Len(t, calls, 5)
	assert.Equal(t, "Updated README.md file!", calls[4].Message)
	assert.Equal(t, 3, h.syncer.Result().FilesSkipped)
}

func TestRunWithoutUsernameSkipsReadme(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.syncer.Run(context.Background(), nil, ""))

	assert.Empty(t, h.profiles.calls)
	assert.Empty(t, h.committer.Calls())
	assert.False(t, h.syncer.Result().ReadmeUpdated)
}

func TestSyncChallengesStopsAtFirstError(t *testing.T) {
	h := newHarness(t)
	h.committer.Err = errors.New("index.lock exists")

	challenges := []models.Challenge{
		{Level: "4kyu", Title: "first", Solutions: []models.Solution{{Language: "Python", Code: "1"}}},
		{Level: "4kyu", Title: "second", Solutions: []models.Solution{{Language: "Python", Code: "2"}}},
	}
	err := h.syncer.Run(context.Background(), challenges, "jdoe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `challenge "first"`)
	assert.Contains(t, err.Error(), "index.lock exists")

	assert.Len(t, h.committer.Calls(), 1)
	assert.Empty(t, h.profiles.calls, "README step must not run after a failure")
	assert.True(t, h.log.HasError())
}

func TestSyncReadmePropagatesFetchError(t *testing.T) {
	h := newHarness(t)
	h.profiles.err = errs.New(errs.ErrorTypeNotFound, "fetch user", "not found")

	err := h.syncer.SyncReadme(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrorTypeNotFound))

	_, ok := h.store.Content("/katas/README.md")
	assert.False(t, ok)
}

func TestSyncReadmeWithoutCollaborators(t *testing.T) {
	m, err := materializer.New(materializer.Options{BaseDir: "/katas", Store: storage.NewMemStore("/katas")})
	require.NoError(t, err)

	s := New(m, nil, nil, nil)
	assert.Error(t, s.SyncReadme(context.Background(), "jdoe"))
}
