package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bloodnet/internal/directory/catalog"
	"bloodnet/internal/directory/contact"
	"bloodnet/internal/directory/handler"
	"bloodnet/internal/i18n"
	dErrors "bloodnet/pkg/domain-errors"
)

func newDistrictsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "districts [query]",
		Short: "List districts, optionally filtered by a case-insensitive substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			districts, err := b.Districts(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(districts) == 0 {
				renderEmpty(out, fmt.Sprintf("No districts match %q.", query))
				return nil
			}
			for _, d := range districts {
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}
}

func newDonorsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "donors <district> <blood-group>",
		Short:   "Find donors by exact district and blood group",
		Example: "  bloodnet donors Chennai O+",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			donors, err := b.FindDonors(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			renderDonors(cmd.OutOrStdout(), donors)
			return nil
		},
	}
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var district, bloodGroup, status, text string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search donors by any combination of criteria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := handler.ParseDonorQuery(url.Values{
				"district":    {district},
				"blood_group": {bloodGroup},
				"status":      {status},
				"q":           {text},
			})
			if err != nil {
				return err
			}
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			donors, err := b.SearchDonors(cmd.Context(), q)
			if err != nil {
				return err
			}
			renderDonors(cmd.OutOrStdout(), donors)
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", "", "exact district name")
	cmd.Flags().StringVar(&bloodGroup, "blood-group", "", "exact blood group, e.g. AB-")
	cmd.Flags().StringVar(&status, "status", "", "Available or Not Available")
	cmd.Flags().StringVar(&text, "q", "", "case-insensitive donor name substring")
	return cmd
}

func newRecencyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recency <last-donated>",
		Short: "Report whether a donation date falls within the last three months",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			res, err := b.Recency(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			verdict := "not recent"
			if res.RecentlyDonated {
				verdict = "recently donated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (threshold %s)\n", res.LastDonated, verdict, res.Threshold)
			return nil
		},
	}
}

func newUrgentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "urgent",
		Short: "List high-urgency emergency requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			reqs, err := b.UrgentRequests(cmd.Context())
			if err != nil {
				return err
			}
			renderUrgent(cmd.OutOrStdout(), reqs)
			return nil
		},
	}
}

func newRequestsCmd(opts *rootOptions) *cobra.Command {
	var district, bloodGroup, urgency string
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List emergency requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := handler.ParseRequestQuery(url.Values{
				"district":    {district},
				"blood_group": {bloodGroup},
				"urgency":     {urgency},
			})
			if err != nil {
				return err
			}
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			reqs, err := b.Requests(cmd.Context(), q)
			if err != nil {
				return err
			}
			renderRequests(cmd.OutOrStdout(), reqs)
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", "", "exact district name")
	cmd.Flags().StringVar(&bloodGroup, "blood-group", "", "exact blood group")
	cmd.Flags().StringVar(&urgency, "urgency", "", "High, Medium or Low")
	return cmd
}

func newFacilitiesCmd(opts *rootOptions) *cobra.Command {
	var district string
	cmd := &cobra.Command{
		Use:   "facilities",
		Short: "List blood banks, donation camps and helplines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			banks, err := b.BloodBanks(ctx, district)
			if err != nil {
				return err
			}
			camps, err := b.Camps(ctx)
			if err != nil {
				return err
			}
			helplines, err := b.Helplines(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("Blood banks"))
			renderBloodBanks(out, banks)
			fmt.Fprintln(out, headerStyle.Render("Upcoming donation camps"))
			renderCamps(out, camps)
			fmt.Fprintln(out, headerStyle.Render("Helplines"))
			renderHelplines(out, helplines)
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", "", "only blood banks in this district")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <district> <blood-group>",
		Short: "Write the matching donors to an xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.backend(cmd)
			if err != nil {
				return err
			}
			data, err := b.ExportDonors(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if output == "" {
				output = handler.ExportFilename(args[0], args[1])
			}
			path := filepath.Clean(output)
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default derived from the query)")
	return cmd
}

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "links <number>",
		Short:   "Print the call and WhatsApp links for a phone number",
		Example: `  bloodnet links "+91 9876543210"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "call:     %s\n", contact.TelURI(args[0]))
			if link := contact.WhatsAppLink(args[0]); link != "" {
				fmt.Fprintf(out, "whatsapp: %s\n", link)
			}
			return nil
		},
	}
}

func newLintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check catalog records for references outside the known enumerations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load(opts.seed)
			if err != nil {
				return err
			}
			issues := catalog.Lint(c)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}
			if len(issues) > 0 {
				return fmt.Errorf("catalog has %d issue(s)", len(issues))
			}
			fmt.Fprintln(out, "catalog ok")
			return nil
		},
	}
}

func newTranslateCmd() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "translate [key]",
		Short: "Print one translation, or the whole table for a locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := i18n.ParseLocale(locale)
			if err != nil {
				return err
			}
			tr, err := i18n.New()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				key := i18n.Key(args[0])
				if !key.IsKnown() {
					return dErrors.New(dErrors.CodeNotFound, "unknown translation key: "+args[0])
				}
				fmt.Fprintln(out, tr.T(loc, key))
				return nil
			}
			table := tr.Table(loc)
			for _, k := range i18n.Keys() {
				fmt.Fprintf(out, "%s = %s\n", k, table[k])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", string(i18n.DefaultLocale), "en or ta")
	return cmd
}
