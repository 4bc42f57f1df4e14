package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"asset-audit/core/apperror"
)

// Reconcile classifies scannedCodes against the assets registered at targetLocation.
// Blank codes are ignored and duplicates collapse into one. Codes unknown to the registry
// are counted in TotalScanned but appear in no classification.
func Reconcile(ctx context.Context, registry Registry, targetLocation string, scannedCodes []string) (*Result, error) {
	targetLocation = strings.TrimSpace(targetLocation)
	if targetLocation == "" {
		return nil, apperror.Validation("location is required")
	}

	codes := NormalizeCodes(scannedCodes)

	expected, err := registry.FindByLocation(ctx, targetLocation)
	if err != nil {
		return nil, wrapRegistryErr("find assets by location", err)
	}

	var scanned []Asset
	if len(codes) > 0 {
		scanned, err = registry.FindByCodes(ctx, codes)
		if err != nil {
			return nil, wrapRegistryErr("find assets by codes", err)
		}
	}

	// Index both sides once
	scannedSet := make(map[string]struct{}, len(scanned))
	for _, asset := range scanned {
		scannedSet[asset.Code] = struct{}{}
	}
	expectedSet := make(map[string]struct{}, len(expected))

	result := &Result{
		Location:      targetLocation,
		TotalScanned:  len(codes),
		TotalExpected: len(expected),
		Verified:      []Entry{},
		Missing:       []Entry{},
		Foreign:       []ForeignEntry{},
	}

	for _, asset := range expected {
		expectedSet[asset.Code] = struct{}{}
		entry := Entry{Code: asset.Code, Description: asset.Description}
		if _, ok := scannedSet[asset.Code]; ok {
			result.Verified = append(result.Verified, entry)
		} else {
			result.Missing = append(result.Missing, entry)
		}
	}

	seenForeign := make(map[string]struct{})
	for _, asset := range scanned {
		if _, ok := expectedSet[asset.Code]; ok {
			continue
		}
		if _, dup := seenForeign[asset.Code]; dup {
			continue
		}
		seenForeign[asset.Code] = struct{}{}
		result.Foreign = append(result.Foreign, ForeignEntry{
			Code:           asset.Code,
			Description:    asset.Description,
			ActualLocation: asset.Location,
		})
	}

	sort.Slice(result.Verified, func(i, j int) bool { return result.Verified[i].Code < result.Verified[j].Code })
	sort.Slice(result.Missing, func(i, j int) bool { return result.Missing[i].Code < result.Missing[j].Code })
	sort.Slice(result.Foreign, func(i, j int) bool { return result.Foreign[i].Code < result.Foreign[j].Code })

	result.VerifiedCount = len(result.Verified)
	result.MissingCount = len(result.Missing)
	result.ForeignCount = len(result.Foreign)

	return result, nil
}

// VerifyOne checks a single code against the location declared by the scanner.
func VerifyOne(ctx context.Context, registry Registry, code, declaredLocation string) (*Verification, error) {
	declaredLocation = strings.TrimSpace(declaredLocation)
	if declaredLocation == "" {
		return nil, apperror.Validation("declared location is required")
	}

	asset, err := Lookup(ctx, registry, code)
	if err != nil {
		return nil, err
	}

	v := &Verification{
		Asset:            *asset,
		DeclaredLocation: declaredLocation,
		Belongs:          asset.Location == declaredLocation,
	}
	if !v.Belongs {
		actual := asset.Location
		v.ActualLocation = &actual
	}
	return v, nil
}

// Lookup returns the registry entry for code.
func Lookup(ctx context.Context, registry Registry, code string) (*Asset, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.Validation("code is required")
	}

	asset, err := registry.FindByCode(ctx, code)
	if err != nil {
		return nil, wrapRegistryErr(fmt.Sprintf("find asset %s", code), err)
	}
	return asset, nil
}

// NormalizeCodes trims codes, drops blanks and removes duplicates, keeping first-seen order.
func NormalizeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// wrapRegistryErr keeps classified errors as they are and marks anything else as a
// dependency failure.
func wrapRegistryErr(op string, err error) error {
	if apperror.Code(err) != apperror.CodeInternal {
		return err
	}
	return apperror.Dependency(op, err)
}
