package models

// Visitor is a registered person. SectorID references a Sector record;
// deleting the sector does not cascade here, so the reference can dangle.
type Visitor struct {
	Meta
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	SectorID string `json:"sectorId,omitempty"`
	PhotoRef string `json:"photoRef,omitempty"`
}

func (v Visitor) Validate() error {
	var e ValidationError
	if v.Name == "" {
		e.add("name", "required")
	}
	if v.Email != "" && !validEmail(v.Email) {
		e.add("email", "malformed email")
	}
	return e.orNil()
}

type VisitorPatch struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	SectorID *string `json:"sectorId,omitempty"`
	PhotoRef *string `json:"photoRef,omitempty"`
}

func (p VisitorPatch) Apply(v *Visitor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Document != nil {
		v.Document = *p.Document
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Company != nil {
		v.Company = *p.Company
	}
	if p.SectorID != nil {
		v.SectorID = *p.SectorID
	}
	if p.PhotoRef != nil {
		v.PhotoRef = *p.PhotoRef
	}
}
