package conference

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"asset-audit/core/apperror"
	"asset-audit/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRegistry struct {
	assets []reconcile.Asset
	err    error
}

func (r mapRegistry) FindByCode(_ context.Context, code string) (*reconcile.Asset, error) {
	for _, a := range r.assets {
		if a.Code == code {
			return &a, nil
		}
	}
	return nil, apperror.NotFound("asset %s not found", code)
}

func (r mapRegistry) FindByLocation(_ context.Context, location string) ([]reconcile.Asset, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []reconcile.Asset
	for _, a := range r.assets {
		if a.Location == location {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r mapRegistry) FindByCodes(_ context.Context, codes []string) ([]reconcile.Asset, error) {
	var out []reconcile.Asset
	for _, a := range r.assets {
		for _, c := range codes {
			if a.Code == c {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func testRegistry() mapRegistry {
	return mapRegistry{assets: []reconcile.Asset{
		{Code: "A1", Location: "RoomX", Description: "Desk"},
		{Code: "A2", Location: "RoomX", Description: "Chair"},
		{Code: "A3", Location: "RoomY", Description: "Projector"},
		{Code: "B1", Location: "Lab", Description: "Scope"},
		{Code: "B2", Location: "Lab", Description: "Bench"},
	}}
}

func TestBuildReport(t *testing.T) {
	finalized := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	conf := Conference{
		ID:             "c-1",
		Title:          "Audit",
		TargetLocation: "RoomX",
		CreatorID:      ownerID,
		Status:         StatusFinalized,
		FinalizedAt:    &finalized,
	}
	items := []Item{
		{Code: "A1", UserID: 1, Belongs: true},
		{Code: "A3", UserID: 1, Belongs: false, ActualLocation: strPtr("RoomY")},
		{Code: "B2", UserID: 1, Belongs: false, ActualLocation: strPtr("Lab")},
		{Code: "B1", UserID: 1, Belongs: false, ActualLocation: strPtr("Lab")},
		{Code: "B1", UserID: 2, Belongs: false, ActualLocation: strPtr("Lab")},
		{Code: "Z9", UserID: 2, Belongs: false},
	}

	report, err := BuildReport(context.Background(), testRegistry(), conf, items)
	require.NoError(t, err)

	assert.Equal(t, "c-1", report.ConferenceID)
	assert.Equal(t, &finalized, report.FinalizedAt)
	assert.Equal(t, 2, report.TotalExpected)
	assert.Equal(t, 1, report.TotalVerified)
	assert.Equal(t, 1, report.TotalMissing)
	assert.Equal(t, []reconcile.Entry{{Code: "A2", Description: "Chair"}}, report.Missing)

	require.Len(t, report.Foreign, 3)
	assert.Equal(t, "Lab", report.Foreign[0].Location)
	assert.Equal(t, 2, report.Foreign[0].Count)
	assert.Equal(t, []reconcile.Entry{{Code: "B1", Description: "Scope"}, {Code: "B2", Description: "Bench"}}, report.Foreign[0].Items)
	assert.Equal(t, "RoomY", report.Foreign[1].Location)
	assert.Equal(t, UnspecifiedLocation, report.Foreign[2].Location)
	assert.Equal(t, "Z9", report.Foreign[2].Items[0].Code)
	assert.Equal(t, 4, report.TotalForeign)
}

func TestBuildReport_TargetAssetDeclaredElsewhere(t *testing.T) {
	conf := Conference{ID: "c-3", Title: "Audit", TargetLocation: "RoomX"}
	items := []Item{
		{Code: "A1", UserID: 1, ScannedLocation: "Hall", Belongs: false, ActualLocation: strPtr("RoomX")},
	}

	report, err := BuildReport(context.Background(), testRegistry(), conf, items)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalVerified)
	assert.Equal(t, []reconcile.Entry{{Code: "A1", Description: "Desk"}}, report.Verified)
	assert.Empty(t, report.Foreign)
	assert.Equal(t, 0, report.TotalForeign)
}

func TestBuildReport_NoItems(t *testing.T) {
	conf := Conference{ID: "c-2", Title: "Empty", TargetLocation: "RoomX"}

	report, err := BuildReport(context.Background(), testRegistry(), conf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalVerified)
	assert.Equal(t, 2, report.TotalMissing)
	assert.Empty(t, report.Foreign)
	assert.NotNil(t, report.Foreign)
}

func TestBuildReport_RegistryFailure(t *testing.T) {
	registry := mapRegistry{err: errors.New("timeout")}
	_, err := BuildReport(context.Background(), registry, Conference{TargetLocation: "RoomX"}, nil)
	assert.True(t, errors.Is(err, apperror.ErrDependency))
}

func TestRenderReport(t *testing.T) {
	finalized := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	report := &Report{
		ConferenceID:   "c-1",
		Title:          "Audit",
		TargetLocation: "RoomX",
		CreatorName:    "Ana Silva",
		Description:    strPtr("east wing"),
		FinalizedAt:    &finalized,
		TotalExpected:  2,
		TotalVerified:  1,
		TotalMissing:   1,
		TotalForeign:   1,
		Verified:       []reconcile.Entry{{Code: "A1", Description: "Desk"}},
		Missing:        []reconcile.Entry{{Code: "A2", Description: "Chair"}},
		Foreign: []ForeignGroup{
			{Location: "RoomY", Count: 1, Items: []reconcile.Entry{{Code: "A3", Description: "Projector"}}},
		},
	}

	msg := RenderReport(report)
	assert.Equal(t, "Audit report: Audit (RoomX)", msg.Subject)

	for _, want := range []string{
		"Conference: c-1",
		"Created by: Ana Silva",
		"Description: east wing",
		"Finalized at: 2024-03-01T12:00:00Z",
		"Expected: 2",
		"Missing: 1",
		"  - A1 Desk",
		"  - A2 Chair",
		"  RoomY (1)",
		"    - A3 Projector",
	} {
		assert.Contains(t, msg.Body, want)
	}

	// Rendering is a pure function of the report.
	assert.Equal(t, msg, RenderReport(report))

	empty := RenderReport(&Report{Title: "Empty", TargetLocation: "RoomX"})
	assert.False(t, strings.Contains(empty.Body, "registered elsewhere"))
}
