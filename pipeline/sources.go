package pipeline

import (
	"fmt"
	"math"

	frame "github.com/statejoin/statejoin"
)

// KeyState is the join key shared by every source table.
const KeyState = "state"

// BiasCategories are the FBI bias-motivation columns of the hate-crime
// table, after normalization.
var BiasCategories = []string{
	"race_ethnicity_ancestry",
	"religion",
	"sexual_orientation",
	"disability",
	"gender",
	"gender_identity",
}

// column names derived by the loaders
const (
	ColLGBTQCrimes       = "lgbtq_hate_crimes"
	ColPctLGBTQCrimes    = "percentage_lgbtq_crimes"
	ColReportingPct      = "agency_reporting_percentage"
	ColNewsStories       = "news_stories_count"
	ColPerCapita         = "lgbtq_crimes_per_capita"
	ColPerLGBTQCapita    = "lgbtq_crimes_per_lgbtq_capita"
	ColPopulationCovered = "population_covered"
	ColLGBTAdults        = "lgbt_adult_population"
)

var percentColumns = []string{
	"lgbt_population_density",
	"percent_of_lgbt_individuals_raising_children",
	"percent_of_same_sex_couples_raising_children",
}

var legalColumns = []string{
	"sexual_orientation_protected",
	"gender_identity_protected",
}

func loadNormalized(path string, required ...string) (*frame.Frame, error) {
	f, e := frame.ReadCSV(path)
	if e != nil {
		return nil, e
	}

	f.Normalize()

	for _, nm := range required {
		if f.Column(nm) == nil {
			return nil, fmt.Errorf("%s: required column %s missing", path, nm)
		}
	}

	return f, nil
}

// LoadHateCrimes loads the per-state bias-motivation counts and derives
// the combined LGBTQIA+ count and its share of all hate crimes.
func LoadHateCrimes(path string) (*frame.Frame, error) {
	required := append([]string{KeyState, ColPopulationCovered}, BiasCategories...)

	f, e := loadNormalized(path, required...)
	if e != nil {
		return nil, e
	}

	so := f.Column("sexual_orientation")
	gi := f.Column("gender_identity")

	// exact integer sum when both sources loaded as ints
	if so.DataType() == frame.DTint && gi.DataType() == frame.DTint {
		sov, _ := so.AsInt()
		giv, _ := gi.AsInt()

		sum := make([]int, len(sov))
		for ind := range sov {
			sum[ind] = sov[ind] + giv[ind]
		}

		var cx *frame.Col
		if cx, e = frame.NewCol(sum, frame.DTint, frame.ColName(ColLGBTQCrimes)); e != nil {
			return nil, e
		}

		if e = f.AppendColumn(cx, false); e != nil {
			return nil, e
		}
	} else {
		var sov, giv []float64
		if sov, e = zeroFilled(f, "sexual_orientation"); e != nil {
			return nil, e
		}

		if giv, e = zeroFilled(f, "gender_identity"); e != nil {
			return nil, e
		}

		sum := make([]float64, len(sov))
		for ind := range sov {
			sum[ind] = sov[ind] + giv[ind]
		}

		var cx *frame.Col
		if cx, e = frame.NewCol(sum, frame.DTfloat, frame.ColName(ColLGBTQCrimes)); e != nil {
			return nil, e
		}

		if e = f.AppendColumn(cx, false); e != nil {
			return nil, e
		}
	}

	// share of all hate crimes, undefined where nothing was reported
	total := make([]float64, f.RowCount())
	for _, cat := range BiasCategories {
		var catv []float64
		if catv, e = zeroFilled(f, cat); e != nil {
			return nil, e
		}

		for ind, xv := range catv {
			total[ind] += xv
		}
	}

	lgbtq, _ := f.Column(ColLGBTQCrimes).AsFloat()
	pct := make([]float64, len(total))
	for ind := range total {
		if total[ind] == 0 {
			pct[ind] = math.NaN()
			continue
		}

		pct[ind] = lgbtq[ind] / total[ind]
	}

	var cx *frame.Col
	if cx, e = frame.NewCol(pct, frame.DTfloat, frame.ColName(ColPctLGBTQCrimes)); e != nil {
		return nil, e
	}

	if e = f.AppendColumn(cx, false); e != nil {
		return nil, e
	}

	return f, nil
}

// LoadReporting loads the per-state agency participation counts and
// derives the reporting-rate percentage.
func LoadReporting(path string) (*frame.Frame, error) {
	f, e := loadNormalized(path, KeyState,
		"agencies_submitting_incident_reports", "number_of_participating_agencies")
	if e != nil {
		return nil, e
	}

	if e = RatioColumn(f, ColReportingPct,
		"agencies_submitting_incident_reports", "number_of_participating_agencies"); e != nil {
		return nil, e
	}

	return f, nil
}

// LoadPopulation loads the per-state LGBT population estimates and
// converts the three percentage-string fields to fractions.
func LoadPopulation(path string) (*frame.Frame, error) {
	required := append([]string{KeyState, ColLGBTAdults}, percentColumns...)

	f, e := loadNormalized(path, required...)
	if e != nil {
		return nil, e
	}

	for _, nm := range percentColumns {
		if e = PercentToFraction(f, nm); e != nil {
			return nil, e
		}
	}

	return f, nil
}

// LoadLegal loads the per-state Y/N protection flags and appends the
// binary-encoded columns.
func LoadLegal(path string) (*frame.Frame, error) {
	required := append([]string{KeyState}, legalColumns...)

	f, e := loadNormalized(path, required...)
	if e != nil {
		return nil, e
	}

	for _, nm := range legalColumns {
		var s []string
		if s, e = f.Column(nm).AsString(); e != nil {
			return nil, e
		}

		enc := make([]float64, len(s))
		for ind, sv := range s {
			enc[ind] = EncodeYN(sv)
		}

		var cx *frame.Col
		if cx, e = frame.NewCol(enc, frame.DTfloat, frame.ColName(nm+"_num")); e != nil {
			return nil, e
		}

		if e = f.AppendColumn(cx, false); e != nil {
			return nil, e
		}
	}

	return f, nil
}

// LoadSocial loads the pre-aggregated social mention counts; beyond
// name normalization it passes through unchanged.
func LoadSocial(path string) (*frame.Frame, error) {
	return loadNormalized(path, KeyState)
}

// AggregateNews loads raw per-article rows and reduces them to one
// count per state: sort, drop exact duplicate rows, then count rows per
// state. States with no articles are simply absent; after the join
// their count is missing, not zero.
func AggregateNews(path string) (*frame.Frame, error) {
	f, e := loadNormalized(path, KeyState)
	if e != nil {
		return nil, e
	}

	if e = f.Sort(KeyState); e != nil {
		return nil, e
	}

	f = f.Distinct()

	if e = f.ToCategory(KeyState); e != nil {
		return nil, e
	}

	var counts *frame.Frame
	if counts, e = f.By(KeyState); e != nil {
		return nil, e
	}

	if e = counts.Column("count").Rename(ColNewsStories); e != nil {
		return nil, e
	}

	return counts, nil
}
