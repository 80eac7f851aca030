package domain

import "math"

// SemesterStats is the GPA summary of one semester group.
type SemesterStats struct {
	Semester     string  `json:"semester"`
	GPA          float64 `json:"gpa"`
	CourseCount  int     `json:"courseCount"`
	TotalCredits float64 `json:"totalCredits"`
}

// GpaStats is derived from a course list on demand and never stored.
// BySemester keeps groups in order of first appearance in the list.
// Invalid lists the ids of records excluded from the sums.
type GpaStats struct {
	Overall    float64         `json:"overall"`
	BySemester []SemesterStats `json:"bySemester"`
	Invalid    []int64         `json:"invalid,omitempty"`
}

// Semester returns the stats for a semester label.
func (s GpaStats) Semester(label string) (SemesterStats, bool) {
	for _, st := range s.BySemester {
		if st.Semester == label {
			return st, true
		}
	}
	return SemesterStats{}, false
}

// ComputeGPA returns the credit-weighted mean of grade points over courses,
// rounded to two decimals. Records that fail Validate are skipped. An empty
// list or zero total credits yields 0.
func ComputeGPA(courses []CourseRecord) float64 {
	var totalPoints, totalCredits float64
	for _, c := range courses {
		if c.Validate() != nil {
			continue
		}
		points, _ := c.Grade.Points()
		totalPoints += points * c.Credits
		totalCredits += c.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return round2(totalPoints / totalCredits)
}

// ComputeStats recomputes overall and per-semester statistics from scratch.
// CourseCount counts every record in a group, valid or not, so the counts
// always sum to len(courses). TotalCredits only sums valid records.
func ComputeStats(courses []CourseRecord) GpaStats {
	stats := GpaStats{
		Overall:    ComputeGPA(courses),
		BySemester: []SemesterStats{},
	}

	var order []string
	groups := make(map[string][]CourseRecord)
	for _, c := range courses {
		label := c.SemesterLabel()
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], c)
		if c.Validate() != nil {
			stats.Invalid = append(stats.Invalid, c.ID)
		}
	}

	for _, label := range order {
		group := groups[label]
		var credits float64
		for _, c := range group {
			if c.Validate() == nil {
				credits += c.Credits
			}
		}
		stats.BySemester = append(stats.BySemester, SemesterStats{
			Semester:     label,
			GPA:          ComputeGPA(group),
			CourseCount:  len(group),
			TotalCredits: credits,
		})
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
