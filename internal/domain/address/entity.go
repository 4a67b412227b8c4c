// Package address models postal directory records returned by the
// CEP lookup provider. These are suggestions surfaced to the client,
// not owned by any contact.
package address

type (
	Address struct {
		CEP          string
		Street       string
		Complement   string
		Neighborhood string
		City         string
		State        string
		IBGE         string
	}
	Addresses []Address
)
