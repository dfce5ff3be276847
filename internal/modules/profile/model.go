// README: User profile aggregate: identity, verification, driver documents.
package profile

import (
	"time"

	"drivehire/internal/types"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// DocType names a driver document slot.
type DocType string

const (
	DocLicense DocType = "license"
	DocAadhaar DocType = "aadhaar"
	DocPan     DocType = "pan"
	DocPhoto   DocType = "photo"
	DocAccount DocType = "account"
)

// RequiredDocs is the set a driver must have verified before claiming trips.
var RequiredDocs = []DocType{DocLicense, DocAadhaar, DocPan, DocPhoto, DocAccount}

func (d DocType) Valid() bool {
	for _, r := range RequiredDocs {
		if d == r {
			return true
		}
	}
	return false
}

// Document is one uploaded file and its admin verification state.
type Document struct {
	URL      string
	Verified bool
}

// Profile is a customer or driver identity. IsVerified tracks email/code
// verification; Documents only matter for drivers.
type Profile struct {
	ID         types.ID
	Name       string
	Email      string
	Phone      string
	Role       Role
	IsVerified bool
	Documents  map[DocType]Document
	CreatedAt  time.Time
}

// DocumentsVerified reports whether every required document has been uploaded
// and verified. Customers trivially fail this; only drivers are gated on it.
func (p *Profile) DocumentsVerified() bool {
	for _, d := range RequiredDocs {
		doc, ok := p.Documents[d]
		if !ok || doc.URL == "" || !doc.Verified {
			return false
		}
	}
	return true
}

// CompletionPercent scores how much of the profile has been supplied. Drivers
// are scored over identity fields plus document uploads; customers over
// identity fields only.
func (p *Profile) CompletionPercent() int {
	filled, total := 0, 3
	if p.Name != "" {
		filled++
	}
	if p.Email != "" {
		filled++
	}
	if p.Phone != "" {
		filled++
	}
	if p.Role == RoleDriver {
		total += len(RequiredDocs)
		for _, d := range RequiredDocs {
			if doc, ok := p.Documents[d]; ok && doc.URL != "" {
				filled++
			}
		}
	}
	return filled * 100 / total
}
