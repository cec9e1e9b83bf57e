// Package recipient models the person an order is delivered to.
package recipient

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient receives orders and the notifications about them.
type Recipient struct {
	id       kernel.UUID
	name     string
	address  string
	location kernel.Location

	isConstructed bool
}

// NewRecipient validates every field and builds the recipient. RestoreRecipient
// is the same constructor under the name repositories use.
func NewRecipient(id kernel.UUID, name, address string, location kernel.Location) (*Recipient, error) {
	r := &Recipient{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient rebuilds a recipient from persisted state.
func RestoreRecipient(id kernel.UUID, name, address string, location kernel.Location) (*Recipient, error) {
	return NewRecipient(id, name, address, location)
}

func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Recipient) ID() kernel.UUID           { return r.id }
func (r *Recipient) Name() string              { return r.name }
func (r *Recipient) Address() string           { return r.address }
func (r *Recipient) Location() kernel.Location { return r.location }

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Recipient) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
