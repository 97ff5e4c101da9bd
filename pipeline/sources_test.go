package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeCSV(t *testing.T, name, contents string) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), name)
	if e := os.WriteFile(fn, []byte(contents), 0o644); e != nil {
		t.Fatal(e)
	}

	return fn
}

const hateCrimesCSV = "State,Race/Ethnicity/Ancestry,Religion,Sexual Orientation,Disability,Gender,Gender Identity,Population Covered\n" +
	"California,100,50,40,5,3,10,39000000\n" +
	"Texas,60,30,20,2,1,5,29000000\n" +
	"Hawaii,0,0,0,0,0,0,1400000\n"

func TestLoadHateCrimes(t *testing.T) {
	fn := writeCSV(t, "hate.csv", hateCrimesCSV)

	f, e := LoadHateCrimes(fn)
	assert.Nil(t, e)
	assert.Equal(t, 3, f.RowCount())

	// raw headers normalized
	assert.True(t, f.HasColumns(append([]string{KeyState, ColPopulationCovered}, BiasCategories...)...))

	// exact integer sum of the two columns
	lgbtq, e := f.Column(ColLGBTQCrimes).AsInt()
	assert.Nil(t, e)
	assert.Equal(t, []int{50, 25, 0}, lgbtq)

	// share of all six categories; zero-reporting state is undefined
	pct := f.Column(ColPctLGBTQCrimes)
	assert.InDelta(t, 50.0/208.0, pct.ElementFloat(0), 1e-12)
	assert.InDelta(t, 25.0/118.0, pct.ElementFloat(1), 1e-12)
	assert.True(t, math.IsNaN(pct.ElementFloat(2)))
}

func TestLoadHateCrimes_NonNumericCount(t *testing.T) {
	// gender_identity has an empty cell, so the count columns are not both
	// ints; sexual_orientation cannot be read as numbers at all
	fn := writeCSV(t, "hate.csv",
		"State,Race/Ethnicity/Ancestry,Religion,Sexual Orientation,Disability,Gender,Gender Identity,Population Covered\n"+
			"California,100,50,ten,5,3,10,39000000\n"+
			"Texas,60,30,twenty,2,1,,29000000\n")

	_, e := LoadHateCrimes(fn)
	assert.NotNil(t, e)
}

func TestLoadHateCrimes_MissingColumn(t *testing.T) {
	fn := writeCSV(t, "hate.csv", "State,Religion\nCalifornia,5\n")

	_, e := LoadHateCrimes(fn)
	assert.NotNil(t, e)
}

func TestLoadReporting(t *testing.T) {
	fn := writeCSV(t, "rep.csv",
		"State,Agencies Submitting Incident Reports,Number Of Participating Agencies\n"+
			"California,720,740\nTexas,0,0\n")

	f, e := LoadReporting(fn)
	assert.Nil(t, e)

	pct := f.Column(ColReportingPct)
	assert.InDelta(t, 720.0/740.0, pct.ElementFloat(0), 1e-12)
	assert.True(t, math.IsNaN(pct.ElementFloat(1)))
}

func TestLoadPopulation(t *testing.T) {
	fn := writeCSV(t, "pop.csv",
		"State,LGBT Adult Population,LGBT Population Density,Percent Of LGBT Individuals Raising Children,Percent Of Same Sex Couples Raising Children\n"+
			"California,1300000,5.3%,30%,18%\n"+
			"Texas,770000,4.1%,n/a,21%\n")

	f, e := LoadPopulation(fn)
	assert.Nil(t, e)

	assert.InDelta(t, 0.053, f.Column("lgbt_population_density").ElementFloat(0), 1e-12)
	assert.InDelta(t, 0.30, f.Column("percent_of_lgbt_individuals_raising_children").ElementFloat(0), 1e-12)

	// bad cell becomes NaN, the load itself succeeds
	assert.True(t, math.IsNaN(f.Column("percent_of_lgbt_individuals_raising_children").ElementFloat(1)))
	assert.InDelta(t, 0.21, f.Column("percent_of_same_sex_couples_raising_children").ElementFloat(1), 1e-12)
}

func TestLoadLegal(t *testing.T) {
	fn := writeCSV(t, "legal.csv",
		"State,Sexual Orientation Protected,Gender Identity Protected\n"+
			"California,Y,Y\nTexas,N,N\nVermont,Unknown,Y\n")

	f, e := LoadLegal(fn)
	assert.Nil(t, e)

	so := f.Column("sexual_orientation_protected_num")
	gi := f.Column("gender_identity_protected_num")
	assert.Equal(t, 1.0, so.ElementFloat(0))
	assert.Equal(t, 0.0, so.ElementFloat(1))
	assert.True(t, math.IsNaN(so.ElementFloat(2)))
	assert.Equal(t, 1.0, gi.ElementFloat(2))

	// source flags survive next to the encoded columns
	assert.True(t, f.HasColumns("sexual_orientation_protected", "gender_identity_protected"))
}

func TestLoadSocial(t *testing.T) {
	fn := writeCSV(t, "social.csv", "State,Social Mentions\nCalifornia,5400\nTexas,3100\n")

	f, e := LoadSocial(fn)
	assert.Nil(t, e)
	assert.Equal(t, []string{"state", "social_mentions"}, f.ColumnNames())

	n, _ := f.Column("social_mentions").AsInt()
	assert.Equal(t, []int{5400, 3100}, n)
}

func TestAggregateNews(t *testing.T) {
	fn := writeCSV(t, "news.csv",
		"State,URL\nCA,a\nCA,a\nCA,b\nTX,c\n")

	f, e := AggregateNews(fn)
	assert.Nil(t, e)
	assert.Equal(t, 2, f.RowCount())
	assert.Equal(t, []string{KeyState, ColNewsStories}, f.ColumnNames())

	s, _ := f.Column(KeyState).AsString()
	c, _ := f.Column(ColNewsStories).AsInt()
	assert.Equal(t, []string{"CA", "TX"}, s)
	// the repeated (CA,a) row drops; (CA,b) stays
	assert.Equal(t, []int{2, 1}, c)
}

func TestAggregateNews_AbsentStatesAbsent(t *testing.T) {
	fn := writeCSV(t, "news.csv", "State,URL\nCA,a\n")

	f, e := AggregateNews(fn)
	assert.Nil(t, e)

	// no zero-filled rows for states with no articles
	s, _ := f.Column(KeyState).AsString()
	assert.Equal(t, []string{"CA"}, s)
}
