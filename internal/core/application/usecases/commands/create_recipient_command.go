package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCreateRecipientCommandIsNotConstructed = errors.New(
		"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateRecipientCommand registers a person orders can be delivered to.
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	address     string
	location    kernel.Location

	guard guard.ConstructorGuard
}

func NewCreateRecipientCommand(
	recipientID kernel.UUID,
	name, address string,
	latitude, longitude float64,
) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

func (c CreateRecipientCommand) RecipientID() kernel.UUID  { return c.recipientID }
func (c CreateRecipientCommand) Name() string              { return c.name }
func (c CreateRecipientCommand) Address() string           { return c.address }
func (c CreateRecipientCommand) Location() kernel.Location { return c.location }

func (c *CreateRecipientCommand) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recipientID = id
	return nil
}

func (c *CreateRecipientCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRecipientCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateRecipientCommand) setLocation(latitude, longitude float64) error {
	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return err
	}
	c.location = location
	return nil
}
