package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/migration"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgRed)
	muted   = color.New(color.FgYellow)
)

func renderEstimate(w io.Writer, j job.Job, est usecase.Estimate) {
	heading.Fprintf(w, "\n%s (%s)\n", j.Title, j.CompanyName)
	if est.OpenForAll {
		muted.Fprintln(w, "Open for all: no hard criteria set.")
	}
	good.Fprintf(w, "Eligible: %d of %d active students\n", est.Eligible, est.Total)
}

func renderAggregate(w io.Writer, res eligibility.AggregateResult) {
	heading.Fprintln(w, "\nSummary")
	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Total", "Eligible", "Applied", "Not Applied", "Applied (Ineligible)"})
	summary.Append([]string{
		strconv.Itoa(res.Total),
		strconv.Itoa(res.Eligible),
		strconv.Itoa(res.Applied),
		strconv.Itoa(res.NotApplied),
		strconv.Itoa(res.AppliedIneligible),
	})
	summary.Render()

	if len(res.Students) == 0 {
		muted.Fprintln(w, "No students to show.")
		return
	}

	heading.Fprintln(w, "\nStudents")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Eligible", "Match %", "Applied", "Reason"})
	table.SetAutoWrapText(false)
	for _, s := range res.Students {
		match := "-"
		if s.MatchPercentage != nil {
			match = strconv.Itoa(*s.MatchPercentage)
		}
		applied := "no"
		if s.HasApplied {
			applied = "yes"
			if s.ApplicationStatus != "" {
				applied = s.ApplicationStatus
			}
		}
		reason := ""
		if s.FailedReason != nil {
			reason = s.FailedReason.Description
		}
		table.Append([]string{s.Name, yesNo(s.Eligible), match, applied, reason})
	}
	table.Render()
}

func renderStudentResult(w io.Writer, res eligibility.StudentResult) {
	if !res.Eligible {
		bad.Fprintln(w, "Not eligible.")
		if f := eligibility.FailureOf(res.FailedReason); f != nil {
			fmt.Fprintf(w, "Fails: %s (%s)\n", f.Description, f.Kind)
		}
		return
	}

	good.Fprintln(w, "Eligible: the student may apply.")
	if res.Match == nil {
		return
	}
	fmt.Fprintf(w, "Match: %d%%\n", res.Match.OverallPercentage)
	if len(res.Match.Details) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Criterion", "Required", "Student", "Credit"})
	for _, d := range res.Match.Details {
		table.Append([]string{
			d.CriterionName,
			strconv.Itoa(d.RequiredLevel),
			strconv.Itoa(d.StudentLevel),
			strconv.FormatFloat(d.Credit, 'f', 2, 64),
		})
	}
	table.Render()
}

func renderMigrations(w io.Writer, statuses []migration.Status) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Version", "Name", "Applied"})
	for _, s := range statuses {
		table.Append([]string{strconv.FormatInt(s.Version, 10), s.Name, yesNo(s.Applied)})
	}
	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
