// Package models defines the data transfer objects exchanged with the
// GramUdyog backend. They mirror the backend JSON shapes and carry no
// behaviour; timestamps stay strings because the backend emits several
// formats depending on the table they come from.
package models

// Message is the generic acknowledgement body returned by mutating endpoints.
type Message struct {
	Message string `json:"message"`
}

// Created acknowledges a create call that also reports the new record id.
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Priority ranks recommendations and networking suggestions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// UserType identifies the kind of account.
type UserType string

const (
	UserIndividual UserType = "individual"
	UserCompany    UserType = "company"
	UserNGO        UserType = "ngo"
	UserInvestor   UserType = "investor"
)

// Valid reports whether t is one of the account kinds the backend accepts.
func (t UserType) Valid() bool {
	switch t {
	case UserIndividual, UserCompany, UserNGO, UserInvestor:
		return true
	}
	return false
}
