package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bloodnet/internal/directory/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	urgentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func renderEmpty(w io.Writer, msg string) {
	fmt.Fprintln(w, mutedStyle.Render(msg))
}

func renderDonors(w io.Writer, donors []models.DonorView) {
	if len(donors) == 0 {
		renderEmpty(w, "No donors found for this search.")
		return
	}
	rows := make([][]string, 0, len(donors))
	for _, d := range donors {
		recent := ""
		if d.RecentlyDonated {
			recent = "recently donated"
		}
		contact := "unavailable"
		if d.Links != nil {
			contact = d.Links.Call
		}
		rows = append(rows, []string{
			d.ID, d.Name, strconv.Itoa(d.Age), d.BloodGroup, d.District,
			d.LastDonated, string(d.Status), recent, contact,
		})
	}
	renderTable(w, []string{"ID", "NAME", "AGE", "GROUP", "DISTRICT", "LAST DONATED", "STATUS", "", "CONTACT"}, rows)
	fmt.Fprintf(w, "%d donor(s)\n", len(donors))
}

func renderRequests(w io.Writer, reqs []models.RequestView) {
	if len(reqs) == 0 {
		renderEmpty(w, "No emergency requests match.")
		return
	}
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{
			r.ID, r.PatientName, r.BloodGroup, r.HospitalName, r.District,
			string(r.Urgency), r.ResponseWindow, r.Posted, r.Links.WhatsApp,
		})
	}
	renderTable(w, []string{"ID", "PATIENT", "GROUP", "HOSPITAL", "DISTRICT", "URGENCY", "WINDOW", "POSTED", "WHATSAPP"}, rows)
}

func renderUrgent(w io.Writer, reqs []models.RequestView) {
	if len(reqs) == 0 {
		renderEmpty(w, "No urgent requests right now.")
		return
	}
	fmt.Fprintln(w, urgentStyle.Render("URGENT BLOOD REQUIREMENTS"))
	renderRequests(w, reqs)
}

func renderBloodBanks(w io.Writer, banks []models.BloodBank) {
	if len(banks) == 0 {
		renderEmpty(w, "No blood banks listed.")
		return
	}
	rows := make([][]string, 0, len(banks))
	for _, b := range banks {
		rows = append(rows, []string{b.Name, b.District, b.Type, b.Hours, b.Phone, strings.Join(b.Services, ", ")})
	}
	renderTable(w, []string{"BLOOD BANK", "DISTRICT", "TYPE", "HOURS", "PHONE", "SERVICES"}, rows)
}

func renderCamps(w io.Writer, camps []models.DonationCamp) {
	if len(camps) == 0 {
		renderEmpty(w, "No upcoming camps.")
		return
	}
	rows := make([][]string, 0, len(camps))
	for _, c := range camps {
		rows = append(rows, []string{c.Title, c.Date, c.Time, c.Venue, c.Organizer, strconv.Itoa(c.ExpectedDonors)})
	}
	renderTable(w, []string{"CAMP", "DATE", "TIME", "VENUE", "ORGANIZER", "EXPECTED"}, rows)
}

func renderHelplines(w io.Writer, helplines []models.HelplineView) {
	rows := make([][]string, 0, len(helplines))
	for _, h := range helplines {
		rows = append(rows, []string{h.Service, h.Number, h.Description, h.Call})
	}
	renderTable(w, []string{"SERVICE", "NUMBER", "DESCRIPTION", "CALL"}, rows)
}
