// Package engine is the query/filter engine of the directory.
//
// Every function here is pure domain logic: no I/O, no clock reads, no
// shared state. Each is a single linear pass that preserves the input order,
// and "nothing matched" is always an empty, non-nil slice rather than an error.
package engine

import (
	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	"bloodnet/pkg/platform/strings"
)

// FindDonors returns the donors whose district and blood group both equal
// the given values exactly (case-sensitive). Unrecognized values match nothing.
func FindDonors(donors []models.Donor, district, bloodGroup string) []models.Donor {
	out := make([]models.Donor, 0)
	for _, d := range donors {
		if d.District == district && d.BloodGroup == bloodGroup {
			out = append(out, d)
		}
	}
	return out
}

// FilterDistricts returns the districts containing searchText, ignoring case.
// An empty searchText returns every district in declared order.
func FilterDistricts(districts []domain.District, searchText string) []domain.District {
	out := make([]domain.District, 0, len(districts))
	for _, d := range districts {
		if strings.ContainsFold(string(d), searchText) {
			out = append(out, d)
		}
	}
	return out
}

// FilterUrgentRequests returns the High-urgency requests in insertion order.
func FilterUrgentRequests(requests []models.EmergencyRequest) []models.EmergencyRequest {
	return FilterRequests(requests, RequestQuery{Urgency: domain.UrgencyHigh})
}

// DonorQuery narrows a donor search. Zero-valued fields match everything.
type DonorQuery struct {
	District     string
	BloodGroup   string
	Availability domain.Availability
	// Text is matched case-insensitively against the donor name.
	Text string
}

// SearchDonors applies every non-empty criterion of q.
func SearchDonors(donors []models.Donor, q DonorQuery) []models.Donor {
	out := make([]models.Donor, 0)
	for _, d := range donors {
		if q.District != "" && d.District != q.District {
			continue
		}
		if q.BloodGroup != "" && d.BloodGroup != q.BloodGroup {
			continue
		}
		if q.Availability != "" && d.Status != q.Availability {
			continue
		}
		if !strings.ContainsFold(d.Name, q.Text) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// RequestQuery narrows the emergency request listing.
type RequestQuery struct {
	District   string
	BloodGroup string
	Urgency    domain.Urgency
}

// FilterRequests applies every non-empty criterion of q.
func FilterRequests(requests []models.EmergencyRequest, q RequestQuery) []models.EmergencyRequest {
	out := make([]models.EmergencyRequest, 0)
	for _, r := range requests {
		if q.District != "" && r.District != q.District {
			continue
		}
		if q.BloodGroup != "" && r.BloodGroup != q.BloodGroup {
			continue
		}
		if q.Urgency != "" && r.Urgency != q.Urgency {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterBloodBanks returns the banks in district, or all banks when district is empty.
func FilterBloodBanks(banks []models.BloodBank, district string) []models.BloodBank {
	out := make([]models.BloodBank, 0, len(banks))
	for _, b := range banks {
		if district == "" || b.District == district {
			out = append(out, b)
		}
	}
	return out
}

// Summarize computes the home page counters.
func Summarize(donors []models.Donor, districts []domain.District, requests []models.EmergencyRequest) models.Summary {
	s := models.Summary{
		TotalDonors:    len(donors),
		Districts:      len(districts),
		UrgentRequests: len(FilterUrgentRequests(requests)),
	}
	for _, d := range donors {
		if d.IsAvailable() {
			s.AvailableDonors++
		}
	}
	return s
}
