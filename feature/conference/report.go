package conference

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"asset-audit/core/reconcile"
)

// UnspecifiedLocation groups foreign items whose canonical location is unknown.
const UnspecifiedLocation = "unspecified"

// Report is the summary of a conference.
type Report struct {
	ConferenceID   string     `json:"conferenceId"`
	Title          string     `json:"title"`
	TargetLocation string     `json:"targetLocation"`
	Description    *string    `json:"description,omitempty"`
	CreatorID      uint       `json:"creatorId"`
	CreatorName    string     `json:"creatorName,omitempty"`
	Status         Status     `json:"status"`
	FinalizedAt    *time.Time `json:"finalizedAt,omitempty"`

	TotalExpected int `json:"totalExpected"`
	TotalVerified int `json:"totalVerified"`
	TotalMissing  int `json:"totalMissing"`
	TotalForeign  int `json:"totalForeign"`

	Verified []reconcile.Entry `json:"verified"`
	Missing  []reconcile.Entry `json:"missing"`
	Foreign  []ForeignGroup    `json:"foreign"`
}

// ForeignGroup lists the foreign items found that are registered at Location.
type ForeignGroup struct {
	Location string            `json:"location"`
	Count    int               `json:"count"`
	Items    []reconcile.Entry `json:"items"`
}

// Message is a rendered notification.
type Message struct {
	Subject string
	Body    string
}

// BuildReport reconciles the items of conf against its target location. Verified and
// missing come from the registry; foreign comes from the items stored with belongs=false,
// grouped by their actual location and deduplicated by code. Items registered at the
// target location are never foreign, whatever location was declared for them.
func BuildReport(ctx context.Context, registry reconcile.Registry, conf Conference, items []Item) (*Report, error) {
	codes := make([]string, 0, len(items))
	for _, item := range items {
		codes = append(codes, item.Code)
	}

	result, err := reconcile.Reconcile(ctx, registry, conf.TargetLocation, codes)
	if err != nil {
		return nil, err
	}

	descriptions := make(map[string]string, len(result.Verified)+len(result.Missing)+len(result.Foreign))
	for _, e := range result.Verified {
		descriptions[e.Code] = e.Description
	}
	for _, e := range result.Foreign {
		descriptions[e.Code] = e.Description
	}

	report := &Report{
		ConferenceID:   conf.ID,
		Title:          conf.Title,
		TargetLocation: conf.TargetLocation,
		Description:    conf.Description,
		CreatorID:      conf.CreatorID,
		Status:         conf.Status,
		FinalizedAt:    conf.FinalizedAt,
		TotalExpected:  result.TotalExpected,
		TotalVerified:  result.VerifiedCount,
		TotalMissing:   result.MissingCount,
		Verified:       result.Verified,
		Missing:        result.Missing,
		Foreign:        groupForeign(items, conf.TargetLocation, descriptions),
	}
	for _, g := range report.Foreign {
		report.TotalForeign += g.Count
	}
	return report, nil
}

func groupForeign(items []Item, target string, descriptions map[string]string) []ForeignGroup {
	byLocation := make(map[string]*ForeignGroup)
	seen := make(map[string]map[string]struct{})

	for _, item := range items {
		if item.Belongs {
			continue
		}
		location := UnspecifiedLocation
		if item.ActualLocation != nil && strings.TrimSpace(*item.ActualLocation) != "" {
			location = *item.ActualLocation
		}
		if location == target {
			continue
		}

		group, ok := byLocation[location]
		if !ok {
			group = &ForeignGroup{Location: location, Items: []reconcile.Entry{}}
			byLocation[location] = group
			seen[location] = make(map[string]struct{})
		}
		if _, dup := seen[location][item.Code]; dup {
			continue
		}
		seen[location][item.Code] = struct{}{}
		group.Items = append(group.Items, reconcile.Entry{Code: item.Code, Description: descriptions[item.Code]})
	}

	groups := make([]ForeignGroup, 0, len(byLocation))
	for _, group := range byLocation {
		sort.Slice(group.Items, func(i, j int) bool { return group.Items[i].Code < group.Items[j].Code })
		group.Count = len(group.Items)
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Location < groups[j].Location })
	return groups
}

// RenderReport formats report as a plain text message.
func RenderReport(report *Report) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Audit report: %s\n", report.Title)
	fmt.Fprintf(&b, "Conference: %s\n", report.ConferenceID)
	fmt.Fprintf(&b, "Location: %s\n", report.TargetLocation)
	if report.CreatorName != "" {
		fmt.Fprintf(&b, "Created by: %s\n", report.CreatorName)
	}
	if report.Description != nil && *report.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", *report.Description)
	}
	if report.FinalizedAt != nil {
		fmt.Fprintf(&b, "Finalized at: %s\n", report.FinalizedAt.UTC().Format(time.RFC3339))
	}

	fmt.Fprintf(&b, "\nExpected: %d\nVerified: %d\nMissing: %d\nForeign: %d\n",
		report.TotalExpected, report.TotalVerified, report.TotalMissing, report.TotalForeign)

	writeEntries(&b, "Verified", report.Verified)
	writeEntries(&b, "Missing", report.Missing)

	if len(report.Foreign) > 0 {
		b.WriteString("\nFound here but registered elsewhere\n")
		for _, group := range report.Foreign {
			fmt.Fprintf(&b, "  %s (%d)\n", group.Location, group.Count)
			for _, e := range group.Items {
				fmt.Fprintf(&b, "    - %s %s\n", e.Code, e.Description)
			}
		}
	}

	return Message{
		Subject: fmt.Sprintf("Audit report: %s (%s)", report.Title, report.TargetLocation),
		Body:    b.String(),
	}
}

func writeEntries(b *strings.Builder, title string, entries []reconcile.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s %s\n", e.Code, e.Description)
	}
}
