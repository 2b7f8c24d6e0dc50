package models

import "time"

// Visit statuses.
const (
	VisitStatusActive   = "active"
	VisitStatusFinished = "finished"
)

// Visit is one pass through the reception desk: a visitor, a destination
// sector, an entry time and eventually an exit time.
type Visit struct {
	Meta
	VisitorID string    `json:"visitorId"`
	SectorID  string    `json:"sectorId"`
	Purpose   string    `json:"purpose,omitempty"`
	EntryTime time.Time `json:"entryTime,omitzero"`
	ExitTime  time.Time `json:"exitTime,omitzero"`
	Status    string    `json:"status,omitempty"`
}

func (v Visit) Validate() error {
	var e ValidationError
	if v.VisitorID == "" {
		e.add("visitorId", "required")
	}
	if v.SectorID == "" {
		e.add("sectorId", "required")
	}
	return e.orNil()
}

// Active reports whether the visit has not been checked out yet.
func (v Visit) Active() bool {
	return v.Status == VisitStatusActive
}

type VisitPatch struct {
	Purpose   *string    `json:"purpose,omitempty"`
	EntryTime *time.Time `json:"entryTime,omitempty"`
	ExitTime  *time.Time `json:"exitTime,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

func (p VisitPatch) Apply(v *Visit) {
	if p.Purpose != nil {
		v.Purpose = *p.Purpose
	}
	if p.EntryTime != nil {
		v.EntryTime = *p.EntryTime
	}
	if p.ExitTime != nil {
		v.ExitTime = *p.ExitTime
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
}
