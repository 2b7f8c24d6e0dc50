package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/visitdesk/visitdesk/internal/audit"
	"github.com/visitdesk/visitdesk/internal/models"
)

func (a *App) Sectors(ctx context.Context) error {
	sectors := a.sectors.List(ctx)
	if len(sectors) == 0 {
		printlnFn("No sectors registered")
		return nil
	}
	for _, s := range sectors {
		printlnFn(fmt.Sprintf("%s  %-20s %-15s %s", s.ID, s.Name, s.Location, s.Status))
	}
	return nil
}

func (a *App) Departments(ctx context.Context, sectorID string) error {
	var deps []models.Department
	if sectorID == "" {
		deps = a.departments.List(ctx)
	} else {
		deps = a.departments.BySector(ctx, sectorID)
	}
	if len(deps) == 0 {
		printlnFn("No departments found")
		return nil
	}
	for _, d := range deps {
		printlnFn(fmt.Sprintf("%s  %-20s sector=%s", d.ID, d.Name, d.SectorID))
	}
	return nil
}

func (a *App) Visitors(ctx context.Context, query string) error {
	var visitors []models.Visitor
	if query == "" {
		visitors = a.visitors.List(ctx)
	} else {
		visitors = a.visitors.Search(ctx, query)
	}
	if len(visitors) == 0 {
		printlnFn("No visitors found")
		return nil
	}
	for _, v := range visitors {
		printlnFn(fmt.Sprintf("%s  %-25s %-18s %s", v.ID, v.Name, v.Document, v.Company))
	}
	return nil
}

// Visits lists the visits currently on the floor.
func (a *App) Visits(ctx context.Context) error {
	active := a.visits.Active(ctx)
	if len(active) == 0 {
		printlnFn("No active visits")
		return nil
	}
	for _, v := range active {
		printlnFn(fmt.Sprintf("%s  visitor=%s sector=%s in=%s", v.ID, v.VisitorID, v.SectorID, formatTime(v.EntryTime)))
	}
	return nil
}

// CheckIn prompts for visitor and sector and opens a visit.
func (a *App) CheckIn(ctx context.Context) error {
	visitorID, err := getSimpleText(a.reader, "Visitor id", os.Stdout)
	if err != nil {
		return err
	}
	sectorID, err := getSimpleText(a.reader, "Sector id", os.Stdout)
	if err != nil {
		return err
	}
	purpose, err := getSimpleText(a.reader, "Purpose (optional)", os.Stdout)
	if err != nil {
		return err
	}

	visit, err := a.visits.CheckIn(ctx, visitorID, sectorID, purpose)
	if err != nil {
		printlnFn("Check-in failed:", err.Error())
		return err
	}
	printlnFn("Checked in, visit", visit.ID)
	return nil
}

func (a *App) CheckOut(ctx context.Context, id string) error {
	visit, err := a.visits.CheckOut(ctx, id)
	if err != nil {
		printlnFn("Check-out failed:", err.Error())
		return err
	}
	printlnFn("Checked out at", formatTime(visit.ExitTime))
	return nil
}

// Audit lists the trail newest-first, optionally narrowed by action substring.
func (a *App) Audit(ctx context.Context, action string) error {
	entries := a.audit.Query(ctx, audit.Filter{Action: action})
	if len(entries) == 0 {
		printlnFn("No audit entries")
		return nil
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s  %-16s %s", formatTime(e.Timestamp), string(e.Action), e.Description))
	}
	return nil
}

func (a *App) readProfilePatch() (models.ProfilePatch, error) {
	var patch models.ProfilePatch
	name, err := getSimpleText(a.reader, "Name (Enter to keep)", os.Stdout)
	if err != nil {
		return patch, err
	}
	if name != "" {
		patch.Name = &name
	}
	phone, err := getSimpleText(a.reader, "Phone (Enter to keep)", os.Stdout)
	if err != nil {
		return patch, err
	}
	if phone != "" {
		patch.Phone = &phone
	}
	return patch, nil
}
