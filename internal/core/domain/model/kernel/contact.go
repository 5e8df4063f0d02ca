package kernel

import (
	"errors"
	"fmt"
	"strings"

	"pickup/internal/pkg/errs"
)

// ErrContactIsNotConstructed is returned when validating a zero-value Contact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"Contact must be created via NewContact constructor",
)

// Contact is a value object holding the customer contact details attached to a
// parcel. Name and phone are required so the storage-expiration sweep always
// has a reachable recipient; email is optional.
//
// Contact is immutable. Use NewContact to construct it:
//
//	contact, err := kernel.NewContact("Mario Rossi", "+39 333 1234567", "mario@example.com")
//	if err != nil {
//	    // handle validation error
//	}
type Contact struct {
	name  string
	phone string
	email string

	isConstructed bool
}

// NewContact creates a validated Contact.
// Name and phone must be non-blank; email, when present, must contain a
// plausible "local@domain" shape. All fields are stored trimmed.
func NewContact(name, phone, email string) (Contact, error) {
	contact := Contact{isConstructed: true}

	if err := errors.Join(
		contact.setName(name),
		contact.setPhone(phone),
		contact.setEmail(email),
	); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate ensures the Contact was created through NewContact.
func (c Contact) Validate() error {
	if !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

// Name returns the customer's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the customer's email address, or an empty string when not provided.
func (c Contact) Email() string {
	return c.email
}

// IsEqual compares two contacts field by field.
func (c Contact) IsEqual(other Contact) bool {
	return c.name == other.name && c.phone == other.phone && c.email == other.email
}

func (c *Contact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Contact) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") > 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer email",
			fmt.Errorf("%q is not a valid address", email),
		)
	}

	c.email = email
	return nil
}
