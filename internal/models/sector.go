package models

// Sector is an organizational area visitors are registered to.
type Sector struct {
	Meta
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Location         string `json:"location,omitempty"`
	ResponsibleName  string `json:"responsibleName,omitempty"`
	ResponsibleEmail string `json:"responsibleEmail,omitempty"`
	Status           string `json:"status,omitempty"`
}

// Validate reports every offending field at once.
func (s Sector) Validate() error {
	var e ValidationError
	if s.Name == "" {
		e.add("name", "required")
	}
	if s.ResponsibleEmail != "" && !validEmail(s.ResponsibleEmail) {
		e.add("responsibleEmail", "malformed email")
	}
	if s.Status != "" && s.Status != StatusActive && s.Status != StatusInactive {
		e.add("status", "must be active or inactive")
	}
	return e.orNil()
}

// SectorPatch shallow-merges into an existing sector.
type SectorPatch struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	Location         *string `json:"location,omitempty"`
	ResponsibleName  *string `json:"responsibleName,omitempty"`
	ResponsibleEmail *string `json:"responsibleEmail,omitempty"`
	Status           *string `json:"status,omitempty"`
}

func (p SectorPatch) Apply(s *Sector) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.ResponsibleName != nil {
		s.ResponsibleName = *p.ResponsibleName
	}
	if p.ResponsibleEmail != nil {
		s.ResponsibleEmail = *p.ResponsibleEmail
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

// Validate checks only the fields the patch touches.
func (p SectorPatch) Validate() error {
	var e ValidationError
	if p.Name != nil && *p.Name == "" {
		e.add("name", "required")
	}
	if p.ResponsibleEmail != nil && *p.ResponsibleEmail != "" && !validEmail(*p.ResponsibleEmail) {
		e.add("responsibleEmail", "malformed email")
	}
	if p.Status != nil && *p.Status != StatusActive && *p.Status != StatusInactive {
		e.add("status", "must be active or inactive")
	}
	return e.orNil()
}
