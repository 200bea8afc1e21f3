// Package addressbook holds contact entries in memory and answers lookups
// by last name.
package addressbook

// Address is a postal address. No field is validated.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// String renders the address as "street, city, state zip".
func (a Address) String() string {
	return a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode
}
