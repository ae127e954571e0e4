package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/catalog"
)

func newTestHierarchyService() HierarchyService {
	return NewHierarchyService(catalog.NewFixtureCatalog(), zap.NewNop())
}

func TestGetHierarchy(t *testing.T) {
	svc := newTestHierarchyService()

	before := time.Now().UTC()
	result, err := svc.GetHierarchy(context.Background(), catalog.DUNSApple)
	if err != nil {
		t.Fatalf("GetHierarchy failed: %v", err)
	}

	if result.DUNS != catalog.DUNSApple {
		t.Errorf("Expected DUNS %s, got %s", catalog.DUNSApple, result.DUNS)
	}
	if result.DataSource != catalog.FixtureDataSource {
		t.Errorf("Expected data source %q, got %q", catalog.FixtureDataSource, result.DataSource)
	}
	if result.Hierarchy == nil {
		t.Fatal("Expected hierarchy data")
	}
	if result.Hierarchy.GlobalUltimate == nil || result.Hierarchy.GlobalUltimate.DUNS != catalog.DUNSApple {
		t.Errorf("Expected Apple as its own global ultimate, got %+v", result.Hierarchy.GlobalUltimate)
	}
	if len(result.Hierarchy.Subsidiaries) != 2 {
		t.Errorf("Expected 2 subsidiaries, got %d", len(result.Hierarchy.Subsidiaries))
	}
	if result.LastUpdated.Before(before) {
		t.Errorf("Expected a fresh retrieval timestamp, got %v", result.LastUpdated)
	}
}

func TestGetHierarchyParentLink(t *testing.T) {
	svc := newTestHierarchyService()

	result, err := svc.GetHierarchy(context.Background(), catalog.DUNSGoogle)
	if err != nil {
		t.Fatalf("GetHierarchy failed: %v", err)
	}
	if result.Hierarchy.Parent == nil || result.Hierarchy.Parent.PrimaryName != "Alphabet Inc." {
		t.Errorf("Expected Alphabet as parent, got %+v", result.Hierarchy.Parent)
	}
}

func TestGetHierarchyUnknownDUNS(t *testing.T) {
	svc := newTestHierarchyService()

	_, err := svc.GetHierarchy(context.Background(), "999999999")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// A company without hierarchy data is indistinguishable from an absent one.
func TestGetHierarchyCompanyWithoutHierarchy(t *testing.T) {
	svc := newTestHierarchyService()

	_, err := svc.GetHierarchy(context.Background(), catalog.DUNSTesla)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetHierarchyCatalogError(t *testing.T) {
	svc := NewHierarchyService(&mockCatalog{getErr: errors.New("registry unavailable")}, zap.NewNop())

	_, err := svc.GetHierarchy(context.Background(), catalog.DUNSApple)
	if err == nil {
		t.Fatal("Expected error when catalog is unavailable")
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected transport error to stay distinct from ErrNotFound, got %v", err)
	}
}
