package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dvergara2005/shopkeeper/internal/common"
)

// Users lists every registered account.
func (a *App) Users(ctx context.Context) error {
	all := a.directory.ListAll(ctx)
	if len(all) == 0 {
		printlnFn("No registered users")
		return nil
	}

	for _, u := range all {
		mark := ""
		if u.Active {
			mark = " (active)"
		}
		printlnFn(fmt.Sprintf("%s <%s>%s", u.Name, u.Email, mark))
	}
	return nil
}

// DeleteUser removes an account by email, together with its profile image.
func (a *App) DeleteUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.directory.Remove(ctx, email); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No account with that email")
		}
		return err
	}

	printlnFn("Account deleted")
	return nil
}

// EditProduct updates a catalog entry. Empty answers keep the current values.
func (a *App) EditProduct(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	p, ok := a.catalog.ByID(id)
	if !ok {
		printlnFn("No such product")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", p.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		p.Name = name
	}

	description, err := getSimpleText(a.reader, "Enter description (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		p.Description = description
	}

	priceText, err := getSimpleText(a.reader, fmt.Sprintf("Enter price [%d]", p.Price), os.Stdout)
	if err != nil {
		return err
	}
	if priceText != "" {
		price, err := strconv.ParseInt(priceText, 10, 64)
		if err != nil {
			printlnFn(fmt.Sprintf("Not a number: %q", priceText))
			return err
		}
		p.Price = price
	}

	brand, err := getSimpleText(a.reader, fmt.Sprintf("Enter brand [%s]", p.Brand), os.Stdout)
	if err != nil {
		return err
	}
	if brand != "" {
		p.Brand = brand
	}

	if err := a.catalog.Update(p); err != nil {
		return err
	}

	printlnFn("Product updated")
	return nil
}
