package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/f1analytics/models"
)

// Statuses are the finish/retirement codes every store starts with.
var Statuses = []models.Status{
	{StatusID: 1, Status: "Finished"},
	{StatusID: 2, Status: "Disqualified"},
	{StatusID: 3, Status: "Accident"},
	{StatusID: 4, Status: "Collision"},
	{StatusID: 5, Status: "Engine"},
	{StatusID: 6, Status: "Gearbox"},
	{StatusID: 7, Status: "Transmission"},
	{StatusID: 8, Status: "Clutch"},
	{StatusID: 9, Status: "Hydraulics"},
	{StatusID: 10, Status: "Electrical"},
	{StatusID: 11, Status: "+1 Lap"},
	{StatusID: 12, Status: "+2 Laps"},
	{StatusID: 13, Status: "+3 Laps"},
	{StatusID: 14, Status: "+4 Laps"},
	{StatusID: 15, Status: "+5 Laps"},
	{StatusID: 16, Status: "Spun off"},
	{StatusID: 17, Status: "Radiator"},
	{StatusID: 18, Status: "Suspension"},
	{StatusID: 19, Status: "Brakes"},
	{StatusID: 20, Status: "Differential"},
}

// CreateTables creates all tables in dependency order, the lookup indexes and
// the status codes. It is idempotent.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Status)(nil),
		(*models.Season)(nil),
		(*models.Circuit)(nil),
		(*models.Driver)(nil),
		(*models.Constructor)(nil),
		(*models.Race)(nil),
		(*models.RaceResult)(nil),
		(*models.QualifyingResult)(nil),
		(*models.DriverStanding)(nil),
		(*models.ConstructorStanding)(nil),
		(*models.LapTime)(nil),
		(*models.PitStop)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	indexes := []struct {
		model  interface{}
		name   string
		column string
	}{
		{(*models.RaceResult)(nil), "idx_race_results_race_id", "race_id"},
		{(*models.RaceResult)(nil), "idx_race_results_driver_id", "driver_id"},
		{(*models.QualifyingResult)(nil), "idx_qualifying_results_race_id", "race_id"},
		{(*models.DriverStanding)(nil), "idx_driver_standings_race_id", "race_id"},
		{(*models.Race)(nil), "idx_races_year", "year"},
		{(*models.Race)(nil), "idx_races_date", "date"},
	}
	for _, ix := range indexes {
		if _, err := db.NewCreateIndex().Model(ix.model).Index(ix.name).Column(ix.column).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating index %s: %w", ix.name, err)
		}
	}

	statuses := append([]models.Status(nil), Statuses...)
	if _, err := db.NewInsert().Model(&statuses).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("seeding status codes: %w", err)
	}

	return nil
}
