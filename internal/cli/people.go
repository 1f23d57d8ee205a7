package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dvergara2005/shopkeeper/internal/common"
)

// People lists the remote people document.
func (a *App) People(ctx context.Context) error {
	list, err := a.people.List(ctx)
	if err != nil {
		printlnFn("Could not load the people list")
		return err
	}

	if len(list) == 0 {
		printlnFn("The people list is empty")
		return nil
	}
	for _, p := range list {
		printlnFn(fmt.Sprintf("%d. %s (%d)", p.ID, p.Name, p.Age))
	}
	return nil
}

// AddPerson appends a person and pushes the whole document to the remote.
func (a *App) AddPerson(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	age, err := getInt(a.reader, "Enter age", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	p, err := a.people.Add(ctx, name, int(age))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added %s with id %d", p.Name, p.ID))
	return nil
}

// EditPerson updates a person by id.
func (a *App) EditPerson(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter person id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	age, err := getInt(a.reader, "Enter age", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.people.Update(ctx, id, name, int(age)); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No person with that id")
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn("Person updated")
	return nil
}

// DeletePerson removes a person by id.
func (a *App) DeletePerson(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter person id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.people.Remove(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No person with that id")
		}
		return err
	}

	printlnFn("Person deleted")
	return nil
}
