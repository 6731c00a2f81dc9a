package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{donorSheet}, f.GetSheetList())
	rows, err := f.GetRows(donorSheet)
	require.NoError(t, err)
	return rows
}

func TestDonorWorkbook(t *testing.T) {
	t.Run("rows follow input order", func(t *testing.T) {
		donors := []models.DonorView{
			{
				Donor: models.Donor{
					ID: "1", Name: "Rajesh Kumar", Age: 28, BloodGroup: "O+", District: "Chennai",
					LastDonated: "2023-12-15", Phone: "+91 9876543210", Status: domain.Available,
				},
				RecentlyDonated: true,
				Links:           &models.ContactLinks{Call: "tel:+91 9876543210", WhatsApp: "https://wa.me/919876543210"},
			},
			{
				Donor: models.Donor{
					ID: "2", Name: "Priya Devi", Age: 25, BloodGroup: "A+", District: "Coimbatore",
					LastDonated: "2024-01-20", Phone: "+91 9876543211", Status: domain.NotAvailable,
				},
			},
		}

		data, err := DonorWorkbook(donors)
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 3)
		assert.Equal(t, DonorHeader, rows[0])
		assert.Equal(t, []string{
			"Rajesh Kumar", "28", "O+", "Chennai", "2023-12-15", "Yes",
			"Available", "+91 9876543210", "https://wa.me/919876543210",
		}, rows[1])
		assert.Equal(t, "Priya Devi", rows[2][0])
		assert.Equal(t, "No", rows[2][5])
		assert.Equal(t, "Not Available", rows[2][6])
	})

	t.Run("empty list writes header only", func(t *testing.T) {
		data, err := DonorWorkbook(nil)
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 1)
		assert.Equal(t, DonorHeader, rows[0])
	})
}
