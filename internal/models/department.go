package models

// Department is a sub-division inside a sector.
type Department struct {
	Meta
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SectorID    string `json:"sectorId,omitempty"`
	Status      string `json:"status,omitempty"`
}

func (d Department) Validate() error {
	var e ValidationError
	if d.Name == "" {
		e.add("name", "required")
	}
	return e.orNil()
}

type DepartmentPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SectorID    *string `json:"sectorId,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (p DepartmentPatch) Apply(d *Department) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.SectorID != nil {
		d.SectorID = *p.SectorID
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}
