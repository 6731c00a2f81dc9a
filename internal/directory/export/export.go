// Package export renders directory results as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bloodnet/internal/directory/models"
)

// ContentType is the media type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const donorSheet = "Donors"

// DonorHeader is the header row of the donor export.
var DonorHeader = []string{
	"Name",
	"Age",
	"Blood Group",
	"District",
	"Last Donated",
	"Recently Donated",
	"Status",
	"Phone",
	"WhatsApp",
}

var donorColumnWidths = []float64{
	24, // Name
	6,  // Age
	12, // Blood Group
	18, // District
	14, // Last Donated
	17, // Recently Donated
	14, // Status
	18, // Phone
	34, // WhatsApp
}

// DonorWorkbook writes donors to a single-sheet xlsx workbook, one row per
// donor in the order given. An empty list produces the header row only.
func DonorWorkbook(donors []models.DonorView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(donorSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#B91C1C"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(donorSheet, "A1", &DonorHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(DonorHeader), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(donorSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range donorColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column: %w", err)
		}
		if err := f.SetColWidth(donorSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, d := range donors {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := donorRow(d)
		if err := f.SetSheetRow(donorSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write donor %s: %w", d.ID, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func donorRow(d models.DonorView) []any {
	recent := "No"
	if d.RecentlyDonated {
		recent = "Yes"
	}
	whatsapp := ""
	if d.Links != nil {
		whatsapp = d.Links.WhatsApp
	}
	return []any{
		d.Name,
		d.Age,
		string(d.BloodGroup),
		string(d.District),
		d.LastDonated,
		recent,
		string(d.Status),
		d.Phone,
		whatsapp,
	}
}
