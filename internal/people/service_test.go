package people

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/logging"
)

type stubRemote struct {
	fetched    []Person
	fetchErr   error
	pushed     [][]Person
	pushErr    error
	fetchCalls int
}

func (s *stubRemote) Fetch(ctx context.Context) ([]Person, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.fetched, nil
}

func (s *stubRemote) Overwrite(ctx context.Context, people []Person) error {
	cp := make([]Person, len(people))
	copy(cp, people)
	s.pushed = append(s.pushed, cp)
	return s.pushErr
}

func newService(remote *stubRemote) *Service {
	return NewService(remote, logging.NewSlogLogger(slog.New(slog.DiscardHandler)))
}

func TestList_FetchesOnceAndCaches(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 1, Name: "Pedro", Age: 30}}}
	s := newService(remote)
	ctx := context.Background()

	first, err := s.List(ctx)
	require.NoError(t, err)
	second, err := s.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.fetchCalls)
}

func TestList_PropagatesFetchError(t *testing.T) {
	remote := &stubRemote{fetchErr: errors.New("offline")}
	s := newService(remote)

	_, err := s.List(context.Background())
	require.Error(t, err)
}

func TestAdd_AssignsMaxPlusOne(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 4, Name: "Pedro", Age: 30}, {ID: 2, Name: "Rosa", Age: 41}}}
	s := newService(remote)

	p, err := s.Add(context.Background(), "Ana", 25)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)

	require.Len(t, remote.pushed, 1)
	assert.Len(t, remote.pushed[0], 3)
}

func TestAdd_FirstPersonGetsIDOne(t *testing.T) {
	remote := &stubRemote{}
	s := newService(remote)

	p, err := s.Add(context.Background(), "Ana", 25)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	s := newService(&stubRemote{})
	ctx := context.Background()

	_, err := s.Add(ctx, "", 25)
	require.Error(t, err)

	_, err = s.Add(ctx, "Ana", 0)
	require.Error(t, err)
}

func TestAdd_PushFailureIsFireAndForget(t *testing.T) {
	remote := &stubRemote{pushErr: errors.New("denied")}
	s := newService(remote)
	ctx := context.Background()

	_, err := s.Add(ctx, "Ana", 25)
	require.NoError(t, err, "a failed push must not fail the local mutation")

	people, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestUpdate_RewritesMatchingPerson(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 1, Name: "Pedro", Age: 30}}}
	s := newService(remote)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, 1, "Pedro Pablo", 31))

	people, _ := s.List(ctx)
	assert.Equal(t, Person{ID: 1, Name: "Pedro Pablo", Age: 31}, people[0])
	require.Len(t, remote.pushed, 1)
}

func TestUpdate_UnknownID(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 1, Name: "Pedro", Age: 30}}}
	s := newService(remote)

	err := s.Update(context.Background(), 9, "X", 1)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, remote.pushed, "no push for a failed update")
}

func TestRemove_DeletesByID(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 1, Name: "Pedro", Age: 30}, {ID: 2, Name: "Rosa", Age: 41}}}
	s := newService(remote)
	ctx := context.Background()

	require.NoError(t, s.Remove(ctx, 1))

	people, _ := s.List(ctx)
	require.Len(t, people, 1)
	assert.Equal(t, int64(2), people[0].ID)
}

func TestRemove_UnknownID(t *testing.T) {
	remote := &stubRemote{fetched: []Person{{ID: 1, Name: "Pedro", Age: 30}}}
	s := newService(remote)

	err := s.Remove(context.Background(), 9)
	require.ErrorIs(t, err, common.ErrNotFound)
}
