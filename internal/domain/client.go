package domain

import "time"

// Person holds the personal data embedded in a client record.
type Person struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int32  `json:"age"`
	Identification string `json:"identification"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

// Client is a bank client. It embeds Person rather than subtyping it.
type Client struct {
	ID int32 `json:"id"`
	Person
	HashedPassword string    `json:"-"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateClientParams is the input data to register a client.
type CreateClientParams struct {
	Person
	HashedPassword string
	Active         bool
}

// UpdateClientParams is the input data to update a client.
type UpdateClientParams struct {
	ID int32
	Person
	Active bool
}
