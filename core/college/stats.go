package college

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// maxBucketLPA bounds the package distribution. Larger amounts still count
// towards the highest and average packages.
const maxBucketLPA = 1e4

// Count is one entry of a distribution.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

type PlacementStats struct {
	TotalStudents int     `json:"totalStudents" yaml:"totalStudents"`
	Placed        int     `json:"placed" yaml:"placed"`
	Rate          string  `json:"rate" yaml:"rate"`
	Highest       string  `json:"highest" yaml:"highest"`
	Average       string  `json:"average" yaml:"average"`
	Companies     []Count `json:"companies" yaml:"companies"`
	Roles         []Count `json:"roles" yaml:"roles"`
	Packages      []Count `json:"packages" yaml:"packages"`
}

// PlacementRate returns placements/students*100 with one decimal, or "0" without students.
func PlacementRate(placements, students int) string {
	if students == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(placements)/float64(students)*100)
}

// ParsePackage reads the amount in lakhs per annum from a free-text package such as "₹6.5 LPA".
func ParsePackage(pkg string) (float64, bool) {
	for i, r := range pkg {
		if r >= '0' && r <= '9' {
			return parseFloat(pkg[i:])
		}
	}
	return 0, false
}

// FormatLPA formats an amount in lakhs per annum.
func FormatLPA(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64) + " LPA"
}

func ComputePlacementStats(students []Student, placements []PlacementRecord) PlacementStats {
	st := PlacementStats{
		TotalStudents: len(students),
		Placed:        len(placements),
		Rate:          PlacementRate(len(placements), len(students)),
		Companies:     distribution(placements, func(p PlacementRecord) string { return p.Company }),
		Roles:         distribution(placements, func(p PlacementRecord) string { return p.Role }),
	}

	var (
		values  []float64
		highest float64
		sum     float64
	)
	for _, p := range placements {
		if v, ok := ParsePackage(p.Package); ok {
			values = append(values, v)
			sum += v
			if v > highest {
				highest = v
			}
		}
	}
	if len(values) == 0 {
		st.Highest = FormatLPA(0)
		st.Average = FormatLPA(0)
		return st
	}
	st.Highest = FormatLPA(highest)
	st.Average = FormatLPA(math.Round(sum/float64(len(values))*10) / 10)
	st.Packages = packageBuckets(values)
	return st
}

// distribution counts placements per key, in first-seen order.
func distribution(placements []PlacementRecord, key func(PlacementRecord) string) []Count {
	var out []Count
	index := make(map[string]int)
	for _, p := range placements {
		k := key(p)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Count{Label: k, Count: 1})
	}
	return out
}

// packageBuckets groups amounts into one-lakh-wide buckets, lowest first.
func packageBuckets(values []float64) []Count {
	counts := make(map[int]int)
	var keys []int
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxBucketLPA {
			continue
		}
		b := int(math.Floor(v))
		if counts[b] == 0 {
			keys = append(keys, b)
		}
		counts[b]++
	}
	sort.Ints(keys)

	out := make([]Count, 0, len(keys))
	for _, b := range keys {
		out = append(out, Count{Label: fmt.Sprintf("₹%d-%d LPA", b, b+1), Count: counts[b]})
	}
	return out
}

func (svc *Service) PlacementStats() PlacementStats {
	return ComputePlacementStats(svc.Students(), svc.Placements())
}
