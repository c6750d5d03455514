package models

// Programs and YearLevels span the dashboard grid. Students outside it are
// still counted in TotalStudents.
var (
	Programs   = []string{"BSCS", "BSIS", "BSIT"}
	YearLevels = []string{"1st year", "2nd year", "3rd year", "4th year"}
)

// GroupCount is one (program, year_level) bucket from the store.
type GroupCount struct {
	Program   string `bson:"program"`
	YearLevel string `bson:"year_level"`
	Count     int64  `bson:"count"`
}

// StudentStats is the dashboard payload. Each program maps year level to
// count plus a "total" entry.
type StudentStats struct {
	Stats         map[string]map[string]int64 `json:"stats"`
	TotalStudents int64                       `json:"totalStudents"`
}
