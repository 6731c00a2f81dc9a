package models

import (
	"slices"

	"bloodnet/pkg/domain"
	"bloodnet/pkg/platform/sentinel"
)

// Donor is a person record that can be matched against a need.
// Records are seed data; nothing in this service mutates them.
type Donor struct {
	ID          string              `json:"id" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Age         int                 `json:"age" yaml:"age"`
	BloodGroup  string              `json:"blood_group" yaml:"blood_group"`
	District    string              `json:"district" yaml:"district"`
	LastDonated string              `json:"last_donated" yaml:"last_donated"`
	Phone       string              `json:"phone" yaml:"phone"`
	Status      domain.Availability `json:"status" yaml:"status"`
}

// IsAvailable reports whether the donor may be contacted.
func (d Donor) IsAvailable() bool {
	return d.Status == domain.Available
}

// EmergencyRequest is a posted need for a blood group at a hospital.
type EmergencyRequest struct {
	ID               string         `json:"id" yaml:"id"`
	PatientName      string         `json:"patient_name" yaml:"patient_name"`
	HospitalName     string         `json:"hospital_name" yaml:"hospital_name"`
	HospitalLocation string         `json:"hospital_location" yaml:"hospital_location"`
	District         string         `json:"district" yaml:"district"`
	BloodGroup       string         `json:"blood_group" yaml:"blood_group"`
	ContactNumber    string         `json:"contact_number" yaml:"contact_number"`
	RequestDate      string         `json:"request_date" yaml:"request_date"`
	Urgency          domain.Urgency `json:"urgency" yaml:"urgency"`
}

// BloodBank is a facility listed on the facilities page.
type BloodBank struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	District string   `json:"district" yaml:"district"`
	Address  string   `json:"address" yaml:"address"`
	Phone    string   `json:"phone" yaml:"phone"`
	Hours    string   `json:"hours" yaml:"hours"`
	Type     string   `json:"type" yaml:"type"`
	Services []string `json:"services" yaml:"services"`
}

// DonationCamp is an announced collection drive.
type DonationCamp struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Date           string `json:"date" yaml:"date"`
	Time           string `json:"time" yaml:"time"`
	Venue          string `json:"venue" yaml:"venue"`
	Organizer      string `json:"organizer" yaml:"organizer"`
	ExpectedDonors int    `json:"expected_donors" yaml:"expected_donors"`
}

// Helpline is an emergency number shown alongside the facilities.
type Helpline struct {
	Service     string `json:"service" yaml:"service"`
	Number      string `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
}

// Catalog is the reference data store: every list the directory serves.
//
// Invariants:
//   - Loaded once at startup and never mutated afterwards
//   - List order is the declared (insertion) order and is preserved by every filter
//   - Accessors return copies, so the catalog is safe to share across
//     concurrent request handlers without locking
type Catalog struct {
	districts   []domain.District
	bloodGroups []domain.BloodGroup
	donors      []Donor
	requests    []EmergencyRequest
	bloodBanks  []BloodBank
	camps       []DonationCamp
	helplines   []Helpline
}

// CatalogData is the mutable form a loader fills before freezing it into a Catalog.
type CatalogData struct {
	Districts   []domain.District
	BloodGroups []domain.BloodGroup
	Donors      []Donor
	Requests    []EmergencyRequest
	BloodBanks  []BloodBank
	Camps       []DonationCamp
	Helplines   []Helpline
}

// NewCatalog freezes data into a Catalog. Empty district and blood group
// lists fall back to the built-in enumerations.
func NewCatalog(data CatalogData) *Catalog {
	districts := data.Districts
	if len(districts) == 0 {
		districts = domain.Districts()
	}
	groups := data.BloodGroups
	if len(groups) == 0 {
		groups = domain.BloodGroups()
	}
	banks := make([]BloodBank, len(data.BloodBanks))
	for i, b := range data.BloodBanks {
		b.Services = slices.Clone(b.Services)
		banks[i] = b
	}
	return &Catalog{
		districts:   slices.Clone(districts),
		bloodGroups: slices.Clone(groups),
		donors:      slices.Clone(data.Donors),
		requests:    slices.Clone(data.Requests),
		bloodBanks:  banks,
		camps:       slices.Clone(data.Camps),
		helplines:   slices.Clone(data.Helplines),
	}
}

func (c *Catalog) Districts() []domain.District { return slices.Clone(c.districts) }
func (c *Catalog) BloodGroups() []domain.BloodGroup { return slices.Clone(c.bloodGroups) }
func (c *Catalog) Donors() []Donor { return slices.Clone(c.donors) }
func (c *Catalog) Requests() []EmergencyRequest { return slices.Clone(c.requests) }
func (c *Catalog) Camps() []DonationCamp { return slices.Clone(c.camps) }
func (c *Catalog) Helplines() []Helpline { return slices.Clone(c.helplines) }

// BloodBanks returns a deep copy; services lists are cloned as well.
func (c *Catalog) BloodBanks() []BloodBank {
	out := make([]BloodBank, len(c.bloodBanks))
	for i, b := range c.bloodBanks {
		b.Services = slices.Clone(b.Services)
		out[i] = b
	}
	return out
}

// DonorByID returns the donor with the given id.
// Returns sentinel.ErrNotFound when no donor has that id.
func (c *Catalog) DonorByID(id string) (Donor, error) {
	for _, d := range c.donors {
		if d.ID == id {
			return d, nil
		}
	}
	return Donor{}, sentinel.ErrNotFound
}
