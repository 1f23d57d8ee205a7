package people

import (
	"context"
	"fmt"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/logging"
)

// Remote is the document endpoint the service pushes to. *Client satisfies
// it; tests substitute a stub.
type Remote interface {
	Fetch(ctx context.Context) ([]Person, error)
	Overwrite(ctx context.Context, people []Person) error
}

// Service keeps a working copy of the people list and mirrors every local
// mutation to the remote with a whole-document overwrite. Pushes are
// fire-and-forget: a failed overwrite is logged and the local copy stands,
// matching the original app's console-only error visibility.
type Service struct {
	remote Remote
	log    logging.Logger
	people []Person
	loaded bool
}

func NewService(r Remote, log logging.Logger) *Service {
	return &Service{remote: r, log: log}
}

// List returns the people list, fetching the remote document on first use.
func (s *Service) List(ctx context.Context) ([]Person, error) {
	if !s.loaded {
		people, err := s.remote.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.people = people
		s.loaded = true
	}
	cp := make([]Person, len(s.people))
	copy(cp, s.people)
	return cp, nil
}

// Add appends a person with the next id (max existing id + 1) and pushes.
func (s *Service) Add(ctx context.Context, name string, age int) (Person, error) {
	if name == "" || age <= 0 {
		return Person{}, fmt.Errorf("add person: name and a positive age are required")
	}
	if _, err := s.List(ctx); err != nil {
		return Person{}, err
	}

	var maxID int64
	for _, p := range s.people {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	person := Person{ID: maxID + 1, Name: name, Age: age}
	s.people = append(s.people, person)
	s.push(ctx)
	return person, nil
}

// Update rewrites the name and age of the person with the given id.
func (s *Service) Update(ctx context.Context, id int64, name string, age int) error {
	if _, err := s.List(ctx); err != nil {
		return err
	}

	for i := range s.people {
		if s.people[i].ID != id {
			continue
		}
		s.people[i].Name = name
		s.people[i].Age = age
		s.push(ctx)
		return nil
	}
	return fmt.Errorf("update person %d: %w", id, common.ErrNotFound)
}

// Remove deletes the person with the given id.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if _, err := s.List(ctx); err != nil {
		return err
	}

	kept := s.people[:0]
	for _, p := range s.people {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.people) {
		return fmt.Errorf("remove person %d: %w", id, common.ErrNotFound)
	}
	s.people = kept
	s.push(ctx)
	return nil
}

func (s *Service) push(ctx context.Context) {
	if err := s.remote.Overwrite(ctx, s.people); err != nil {
		s.log.Error(ctx, "overwriting remote people document failed", "error", err)
	}
}
