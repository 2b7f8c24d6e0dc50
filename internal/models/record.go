// Package models defines the typed domain records of the visitor desk:
// users, sectors, departments, visitors, visits and audit entries. Records
// are concrete structs rather than open-ended maps; validation happens as a
// parse step at the store boundary.
package models

import "time"

// Meta carries the generated identity and lifecycle timestamps shared by
// every domain record. Identity is always the ID field, never position in
// the collection.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (m *Meta) RecordID() string { return m.ID }

// StampCreated fixes the generated id and creation time. Called exactly once,
// by the record store.
func (m *Meta) StampCreated(id string, at time.Time) {
	m.ID = id
	m.CreatedAt = at
}

func (m *Meta) StampUpdated(at time.Time) { m.UpdatedAt = at }

// Record statuses shared by the entity types.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
