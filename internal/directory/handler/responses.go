package handler

import (
	"strings"

	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
)

type DistrictListResponse struct {
	Count     int               `json:"count"`
	Districts []domain.District `json:"districts"`
}

// BloodGroupListResponse backs both the enumeration and the per-district
// selection view; District is set only for the latter.
type BloodGroupListResponse struct {
	District    string              `json:"district,omitempty"`
	Count       int                 `json:"count"`
	BloodGroups []domain.BloodGroup `json:"blood_groups"`
}

// DonorListResponse is the HTTP response for donor listings.
type DonorListResponse struct {
	Count  int                `json:"count"`
	Donors []models.DonorView `json:"donors"`
}

type RequestListResponse struct {
	Count    int                  `json:"count"`
	Requests []models.RequestView `json:"requests"`
}

type BloodBankListResponse struct {
	Count      int                `json:"count"`
	BloodBanks []models.BloodBank `json:"blood_banks"`
}

type CampListResponse struct {
	Count int                   `json:"count"`
	Camps []models.DonationCamp `json:"camps"`
}

type HelplineListResponse struct {
	Count     int                   `json:"count"`
	Helplines []models.HelplineView `json:"helplines"`
}

// RecencyResponse is the HTTP response for GET /recency.
type RecencyResponse struct {
	LastDonated     string `json:"last_donated"`
	RecentlyDonated bool   `json:"recently_donated"`
	Threshold       string `json:"threshold"`
}

// FromDonors wraps donor views in the list envelope.
func FromDonors(donors []models.DonorView) DonorListResponse {
	if donors == nil {
		donors = []models.DonorView{}
	}
	return DonorListResponse{Count: len(donors), Donors: donors}
}

// ExportFilename names a donor export, e.g. "donors-the-nilgiris-ab-neg.xlsx".
func ExportFilename(district, bloodGroup string) string {
	group := strings.NewReplacer("+", "-pos", "-", "-neg").Replace(bloodGroup)
	name := strings.ToLower(strings.Join(strings.Fields(district), "-"))
	return "donors-" + name + "-" + strings.ToLower(group) + ".xlsx"
}
