package analytics_test

import (
	"testing"

	"github.com/padraicbc/f1analytics/analytics"
	"github.com/padraicbc/f1analytics/db/dbtest"
)

// Driver ids used by the season fixture.
const (
	verstappen int64 = 1
	norris     int64 = 2
	leclerc    int64 = 3
	reserve    int64 = 4
)

// seasonFixture is a three-round 2024 season at two circuits:
//
//	round 1 Bahrain:  VER P1 25, NOR P3 15, LEC DNF
//	round 2 Jeddah:   NOR P1 25, VER P2 18, LEC P3 15
//	round 3 Bahrain:  VER DNF,   NOR P2 18, LEC P1 25
//
// RES races once without ever qualifying.
func seasonFixture(t *testing.T) *dbtest.Store {
	s := dbtest.New(t)
	s.Circuit(1, "Bahrain International Circuit", "Bahrain").
		Circuit(2, "Jeddah Corniche Circuit", "Saudi Arabia").
		Circuit(3, "Albert Park", "Australia").
		Driver(verstappen, "VER", "Max", "Verstappen").
		Driver(norris, "NOR", "Lando", "Norris").
		Driver(leclerc, "LEC", "Charles", "Leclerc").
		Driver(reserve, "reserve", "Test", "Driver").
		Constructor(1, "Red Bull").
		Constructor(2, "McLaren").
		Constructor(3, "Ferrari").
		Race(1, 2024, 1, 1, "Bahrain Grand Prix", "2024-03-02").
		Race(2, 2024, 2, 2, "Saudi Arabian Grand Prix", "2024-03-09").
		Race(3, 2024, 3, 1, "Sakhir Grand Prix", "2024-03-23").
		Race(4, 2024, 4, 3, "Australian Grand Prix", "2024-04-07")

	for race := int64(1); race <= 3; race++ {
		s.Qualified(race, verstappen, 1, 1).
			Qualified(race, norris, 2, 2).
			Qualified(race, leclerc, 3, 3)
	}

	s.Results(
		dbtest.Result{Race: 1, Driver: verstappen, Constructor: 1, Position: dbtest.Pos(1), Grid: dbtest.Pos(1), Points: 25, FastestLap: dbtest.Pos(40)},
		dbtest.Result{Race: 1, Driver: norris, Constructor: 2, Position: dbtest.Pos(3), Grid: dbtest.Pos(5), Points: 15},
		dbtest.Result{Race: 1, Driver: leclerc, Constructor: 3, Grid: dbtest.Pos(2), Points: 0},
		dbtest.Result{Race: 1, Driver: reserve, Constructor: 3, Position: dbtest.Pos(4), Grid: dbtest.Pos(9), Points: 12},

		dbtest.Result{Race: 2, Driver: norris, Constructor: 2, Position: dbtest.Pos(1), Grid: dbtest.Pos(2), Points: 25},
		dbtest.Result{Race: 2, Driver: verstappen, Constructor: 1, Position: dbtest.Pos(2), Grid: dbtest.Pos(1), Points: 18},
		dbtest.Result{Race: 2, Driver: leclerc, Constructor: 3, Position: dbtest.Pos(3), Grid: dbtest.Pos(3), Points: 15},

		dbtest.Result{Race: 3, Driver: leclerc, Constructor: 3, Position: dbtest.Pos(1), Grid: dbtest.Pos(1), Points: 25},
		dbtest.Result{Race: 3, Driver: norris, Constructor: 2, Position: dbtest.Pos(2), Grid: dbtest.Pos(4), Points: 18},
		dbtest.Result{Race: 3, Driver: verstappen, Constructor: 1, Grid: dbtest.Pos(2), Points: 0},
	)
	return s
}

func engineFor(s *dbtest.Store) *analytics.Engine {
	return analytics.New(s.ReadOnly())
}
