// Package report computes descriptive summaries of enriched launch rows:
// missing values per column, numeric statistics, and categorical frequencies.
package report

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"launchset/internal/launch"
)

// Kind classifies how a column is summarized.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

var numericColumns = map[string]struct{}{
	launch.ColumnFlightNumber: {},
	launch.ColumnPayloadMass:  {},
	launch.ColumnFlights:      {},
	launch.ColumnBlock:        {},
	launch.ColumnReusedCount:  {},
	launch.ColumnLongitude:    {},
	launch.ColumnLatitude:     {},
}

// IsNumeric reports whether column is summarized with numeric statistics.
func IsNumeric(column string) bool {
	_, ok := numericColumns[column]
	return ok
}

// Numeric holds describe-style statistics. Quantiles use linear interpolation.
// Std is the sample standard deviation and is nil for fewer than two values.
type Numeric struct {
	Mean   float64  `json:"mean"`
	Std    *float64 `json:"std"`
	Min    float64  `json:"min"`
	Q25    float64  `json:"q25"`
	Median float64  `json:"median"`
	Q75    float64  `json:"q75"`
	Max    float64  `json:"max"`
}

// Categorical holds frequency statistics. Ties for Top go to the value seen first.
type Categorical struct {
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// Column summarizes one column.
type Column struct {
	Name        string       `json:"name"`
	Kind        Kind         `json:"kind"`
	Count       int          `json:"count"`
	Missing     int          `json:"missing"`
	Numeric     *Numeric     `json:"numeric,omitempty"`
	Categorical *Categorical `json:"categorical,omitempty"`
}

// MissingRatio is the share of rows with no value.
func (c Column) MissingRatio() float64 {
	total := c.Count + c.Missing
	if total == 0 {
		return 0
	}
	return float64(c.Missing) / float64(total)
}

// Summary describes a dataset column by column, in launch.Columns order.
type Summary struct {
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns"`
}

// Describe summarizes rows.
func Describe(rows []launch.EnrichedLaunch) Summary {
	values := make([][]string, len(rows))
	nulls := make([][]bool, len(rows))
	for i, row := range rows {
		values[i] = row.Values()
		nulls[i] = row.Nulls()
	}

	summary := Summary{Rows: len(rows), Columns: make([]Column, 0, len(launch.Columns))}
	for idx, name := range launch.Columns {
		var present []string
		missing := 0
		for i := range rows {
			if nulls[i][idx] {
				missing++
				continue
			}
			present = append(present, values[i][idx])
		}

		column := Column{Name: name, Count: len(present), Missing: missing}
		if IsNumeric(name) {
			column.Kind = KindNumeric
			column.Numeric = describeNumeric(present)
		} else {
			column.Kind = KindCategorical
			column.Categorical = describeCategorical(present)
		}
		summary.Columns = append(summary.Columns, column)
	}
	return summary
}

func describeNumeric(raw []string) *Numeric {
	nums := make([]float64, 0, len(raw))
	for _, value := range raw {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		nums = append(nums, parsed)
	}
	if len(nums) == 0 {
		return nil
	}
	sort.Float64s(nums)

	mean, sd := stat.MeanStdDev(nums, nil)
	var std *float64
	if len(nums) > 1 {
		std = &sd
	}

	return &Numeric{
		Mean:   mean,
		Std:    std,
		Min:    nums[0],
		Q25:    quantile(nums, 0.25),
		Median: quantile(nums, 0.5),
		Q75:    quantile(nums, 0.75),
		Max:    nums[len(nums)-1],
	}
}

// quantile expects sorted input. It interpolates linearly between the two
// closest ranks at q*(n-1), the convention pandas describe() uses.
// stat.Quantile with stat.LinInterp interpolates the empirical CDF at k/n
// (Hyndman and Fan type 4) and gives different quartiles on small samples.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func describeCategorical(values []string) *Categorical {
	if len(values) == 0 {
		return nil
	}
	counts := make(map[string]int, len(values))
	order := make([]string, 0)
	for _, value := range values {
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}
	top, freq := "", 0
	for _, value := range order {
		if counts[value] > freq {
			top, freq = value, counts[value]
		}
	}
	return &Categorical{Unique: len(order), Top: top, Freq: freq}
}
