package addressbook

import (
	"strings"

	"github.com/google/uuid"
)

// Entry is one contact in the book. ID is assigned by NewEntry and is the
// only identity used for deletion; two entries with equal fields are distinct.
type Entry struct {
	ID        string
	FirstName string
	LastName  string
	Address   Address
	Email     string
	Phone     string
}

// NewEntry creates an Entry with a fresh ID.
func NewEntry(firstName, lastName string, addr Address, email, phone string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Address:   addr,
		Email:     email,
		Phone:     phone,
	}
}

// String renders the entry as a four-line block: name, address, email, phone.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString("Nombre: " + e.FirstName + " " + e.LastName + "\n")
	b.WriteString("Dirección: " + e.Address.String() + "\n")
	b.WriteString("Correo electrónico: " + e.Email + "\n")
	b.WriteString("Teléfono: " + e.Phone)
	return b.String()
}
