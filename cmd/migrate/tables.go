package main

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"github.com/padraicbc/f1analytics/models"
)

func importStatus(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		"SELECT statusId, status FROM status",
		"status_id", columns("status"),
		func(rows *sql.Rows) (models.Status, error) {
			var r models.Status
			err := rows.Scan(&r.StatusID, &r.Status)
			return r, err
		})
}

func importSeasons(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		"SELECT year, url FROM seasons",
		"year", columns("url"),
		func(rows *sql.Rows) (models.Season, error) {
			var (
				r   models.Season
				url sql.NullString
			)
			err := rows.Scan(&r.Year, &url)
			r.URL = nullStr(url)
			return r, err
		})
}

func importCircuits(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT circuitId, circuitRef, name, location, country, lat, lng, alt, url
		 FROM circuits`,
		"circuit_id", columns("circuit_ref, name, location, country, lat, lng, alt, url"),
		func(rows *sql.Rows) (models.Circuit, error) {
			var (
				r                      models.Circuit
				location, country, url sql.NullString
				lat, lng               sql.NullFloat64
				alt                    sql.NullInt64
			)
			err := rows.Scan(&r.CircuitID, &r.CircuitRef, &r.Name, &location, &country, &lat, &lng, &alt, &url)
			r.Location = nullStr(location)
			r.Country = nullStr(country)
			r.Lat = nullFloat(lat)
			r.Lng = nullFloat(lng)
			r.Alt = nullInt(alt)
			r.URL = nullStr(url)
			return r, err
		})
}

func importDrivers(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT driverId, driverRef, number, code, forename, surname, dob, nationality, url
		 FROM drivers`,
		"driver_id", columns("driver_ref, number, code, forename, surname, dob, nationality, url"),
		func(rows *sql.Rows) (models.Driver, error) {
			var (
				r                      models.Driver
				number                 sql.NullInt64
				code, nationality, url sql.NullString
				dob                    sql.NullTime
			)
			err := rows.Scan(&r.DriverID, &r.DriverRef, &number, &code, &r.Forename, &r.Surname, &dob, &nationality, &url)
			r.Number = nullInt(number)
			r.Code = nullStr(code)
			r.DOB = nullDate(dob)
			r.Nationality = nullStr(nationality)
			r.URL = nullStr(url)
			return r, err
		})
}

func importConstructors(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		"SELECT constructorId, constructorRef, name, nationality, url FROM constructors",
		"constructor_id", columns("constructor_ref, name, nationality, url"),
		func(rows *sql.Rows) (models.Constructor, error) {
			var (
				r                models.Constructor
				nationality, url sql.NullString
			)
			err := rows.Scan(&r.ConstructorID, &r.ConstructorRef, &r.Name, &nationality, &url)
			r.Nationality = nullStr(nationality)
			r.URL = nullStr(url)
			return r, err
		})
}

func importRaces(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT raceId, year, round, circuitId, name, date, time, url,
		        fp1_date, fp1_time, fp2_date, fp2_time, fp3_date, fp3_time,
		        quali_date, quali_time, sprint_date, sprint_time
		 FROM races`,
		"race_id", columns(`year, round, circuit_id, name, date, time, url,
			fp1_date, fp1_time, fp2_date, fp2_time, fp3_date, fp3_time,
			quali_date, quali_time, sprint_date, sprint_time`),
		func(rows *sql.Rows) (models.Race, error) {
			var (
				r                        models.Race
				tm, url                  sql.NullString
				fp1t, fp2t, fp3t, qt, st sql.NullString
				fp1d, fp2d, fp3d, qd, sd sql.NullTime
			)
			err := rows.Scan(&r.RaceID, &r.Year, &r.Round, &r.CircuitID, &r.Name, &r.Date, &tm, &url,
				&fp1d, &fp1t, &fp2d, &fp2t, &fp3d, &fp3t, &qd, &qt, &sd, &st)
			r.Time = nullStr(tm)
			r.URL = nullStr(url)
			r.FP1Date, r.FP1Time = nullDate(fp1d), nullStr(fp1t)
			r.FP2Date, r.FP2Time = nullDate(fp2d), nullStr(fp2t)
			r.FP3Date, r.FP3Time = nullDate(fp3d), nullStr(fp3t)
			r.QualiDate, r.QualiTime = nullDate(qd), nullStr(qt)
			r.SprintDate, r.SprintTime = nullDate(sd), nullStr(st)
			return r, err
		})
}

// Results are keyed on (race, driver); every other column is replaced on re-import.
var (
	resultConflict = "race_id, driver_id"
	resultColumns  = columns(`result_id, constructor_id, number, grid, position, position_text,
		position_order, points, laps, time_milliseconds, fastest_lap, fastest_lap_rank,
		fastest_lap_time, fastest_lap_speed, status_id`)
)

func importResults(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT resultId, raceId, driverId, constructorId, number, grid, position, positionText,
		        positionOrder, points, laps, milliseconds, fastestLap, `+"`rank`"+`,
		        fastestLapTime, fastestLapSpeed, statusId
		 FROM results`,
		resultConflict, resultColumns,
		func(rows *sql.Rows) (models.RaceResult, error) {
			var (
				r                                   models.RaceResult
				number, grid, position, order, laps sql.NullInt64
				millis, fastestLap, rank, status    sql.NullInt64
				positionText, fastestLapTime        sql.NullString
				speed                               sql.NullFloat64
			)
			err := rows.Scan(&r.ResultID, &r.RaceID, &r.DriverID, &r.ConstructorID, &number, &grid, &position,
				&positionText, &order, &r.Points, &laps, &millis, &fastestLap, &rank, &fastestLapTime, &speed, &status)
			r.Number = nullInt(number)
			r.Grid = nullInt(grid)
			r.Position = nullInt(position)
			r.PositionText = nullStr(positionText)
			r.PositionOrder = nullInt(order)
			r.Laps = nullInt(laps)
			r.TimeMilliseconds = nullInt64(millis)
			r.FastestLap = nullInt(fastestLap)
			r.FastestLapRank = nullInt(rank)
			r.FastestLapTime = nullStr(fastestLapTime)
			r.FastestLapSpeed = nullFloat(speed)
			r.StatusID = nullInt64(status)
			return r, err
		})
}

func importQualifying(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT qualifyId, raceId, driverId, constructorId, number, position, q1, q2, q3
		 FROM qualifying`,
		"race_id, driver_id", columns(`qualify_id, constructor_id, number, position,
			q1_time, q1_milliseconds, q2_time, q2_milliseconds, q3_time, q3_milliseconds`),
		func(rows *sql.Rows) (models.QualifyingResult, error) {
			var (
				r                models.QualifyingResult
				number, position sql.NullInt64
				q1, q2, q3       sql.NullString
			)
			err := rows.Scan(&r.QualifyID, &r.RaceID, &r.DriverID, &r.ConstructorID, &number, &position, &q1, &q2, &q3)
			r.Number = nullInt(number)
			r.Position = nullInt(position)
			r.Q1Time, r.Q1Milliseconds = lapTime(q1)
			r.Q2Time, r.Q2Milliseconds = lapTime(q2)
			r.Q3Time, r.Q3Milliseconds = lapTime(q3)
			return r, err
		})
}

func importDriverStandings(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT driverStandingsId, raceId, driverId, points, position, positionText, wins
		 FROM driverStandings`,
		"race_id, driver_id", columns("standing_id, points, position, position_text, wins"),
		func(rows *sql.Rows) (models.DriverStanding, error) {
			var (
				r            models.DriverStanding
				position     sql.NullInt64
				positionText sql.NullString
			)
			err := rows.Scan(&r.StandingID, &r.RaceID, &r.DriverID, &r.Points, &position, &positionText, &r.Wins)
			r.Position = nullInt(position)
			r.PositionText = nullStr(positionText)
			return r, err
		})
}

func importConstructorStandings(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		`SELECT constructorStandingsId, raceId, constructorId, points, position, positionText, wins
		 FROM constructorStandings`,
		"race_id, constructor_id", columns("standing_id, points, position, position_text, wins"),
		func(rows *sql.Rows) (models.ConstructorStanding, error) {
			var (
				r            models.ConstructorStanding
				position     sql.NullInt64
				positionText sql.NullString
			)
			err := rows.Scan(&r.StandingID, &r.RaceID, &r.ConstructorID, &r.Points, &position, &positionText, &r.Wins)
			r.Position = nullInt(position)
			r.PositionText = nullStr(positionText)
			return r, err
		})
}

func importLapTimes(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		"SELECT raceId, driverId, lap, position, time, milliseconds FROM lapTimes",
		"race_id, driver_id, lap", columns("position, time_string, milliseconds"),
		func(rows *sql.Rows) (models.LapTime, error) {
			var (
				r                models.LapTime
				position, millis sql.NullInt64
				tm               sql.NullString
			)
			err := rows.Scan(&r.RaceID, &r.DriverID, &r.Lap, &position, &tm, &millis)
			r.Position = nullInt(position)
			r.TimeString = nullStr(tm)
			r.Milliseconds = nullInt64(millis)
			return r, err
		})
}

func importPitStops(ctx context.Context, src *sql.DB, dst bun.IDB) (int, error) {
	return copyRows(ctx, src, dst,
		"SELECT raceId, driverId, stop, lap, time, duration, milliseconds FROM pitStops",
		"race_id, driver_id, stop", columns("lap, time_string, duration_string, duration_milliseconds"),
		func(rows *sql.Rows) (models.PitStop, error) {
			var (
				r            models.PitStop
				tm, duration sql.NullString
				millis       sql.NullInt64
			)
			err := rows.Scan(&r.RaceID, &r.DriverID, &r.Stop, &r.Lap, &tm, &duration, &millis)
			r.TimeString = nullStr(tm)
			r.DurationString = nullStr(duration)
			r.DurationMilliseconds = nullInt64(millis)
			return r, err
		})
}
