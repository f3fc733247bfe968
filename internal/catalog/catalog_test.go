package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(i int) *int           { return &i }

const jsonCatalog = `{
  "Hyderabad": {
    "center": [17.385, 78.4867],
    "poi": [
      {"name": "Charminar", "theme": "heritage", "cost": 50, "duration_min": 60, "rating": 4.5, "lat": 17.3616, "lon": 78.4747},
      {"name": "Lumbini Park", "theme": "family"}
    ]
  },
  "Agra": {
    "poi": [{"name": "Taj Mahal", "theme": "heritage", "cost": 1100}]
  }
}`

const yamlCatalog = `
Hyderabad:
  center: [17.385, 78.4867]
  poi:
    - name: Charminar
      theme: heritage
      cost: 50
      duration_min: 60
      rating: 4.5
      lat: 17.3616
      lon: 78.4747
    - name: Lumbini Park
      theme: family
Agra:
  poi:
    - {name: Taj Mahal, theme: heritage, cost: 1100}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadFile(writeFile(t, "catalog.json", jsonCatalog))
	require.NoError(t, err)
	fromYAML, err := LoadFile(writeFile(t, "catalog.yml", yamlCatalog))
	require.NoError(t, err)

	assert.Equal(t, Convert(fromJSON), Convert(fromYAML))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.json", "{not json"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.yaml", "Hyderabad: [unclosed"))
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	f, err := ParseJSON([]byte(jsonCatalog))
	require.NoError(t, err)
	require.Empty(t, Validate(f))

	cities := Convert(f)
	require.Len(t, cities, 2)
	assert.Equal(t, "Agra", cities[0].Name)
	assert.Equal(t, "Hyderabad", cities[1].Name)

	agra := cities[0]
	assert.Equal(t, domain.DefaultCityCenter, agra.Center)
	require.Len(t, agra.POIs, 1)
	assert.Equal(t, agra.Center, agra.POIs[0].Location)

	hyd := cities[1]
	require.Len(t, hyd.POIs, 2)
	assert.Equal(t, "Charminar", hyd.POIs[0].Name)
	assert.Equal(t, domain.Coordinates{Lat: 17.3616, Lon: 78.4747}, hyd.POIs[0].Location)
	assert.Equal(t, 60, hyd.POIs[0].EffectiveDurationMin())

	park := hyd.POIs[1]
	assert.Nil(t, park.Cost)
	assert.Equal(t, domain.DefaultDurationMin, park.EffectiveDurationMin())
	assert.Equal(t, hyd.Center, park.Location)
}

func TestValidate_Valid(t *testing.T) {
	f := File{"Goa": {POI: []POIImport{{Name: "Baga Beach", Theme: "leisure", Cost: ptrFloat(0)}}}}
	assert.Empty(t, Validate(f))
}

func TestValidate_FullDayDurationAllowed(t *testing.T) {
	f := File{"Goa": {POI: []POIImport{{Name: "Day cruise", DurationMin: ptrInt(MaxDurationMin)}}}}
	assert.Empty(t, Validate(f))
}

func TestValidate_Empty(t *testing.T) {
	assert.Len(t, Validate(File{}), 1)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		city CityImport
	}{
		{"missing name", CityImport{POI: []POIImport{{Theme: "x"}}}},
		{"duplicate name", CityImport{POI: []POIImport{{Name: "A"}, {Name: "A"}}}},
		{"negative cost", CityImport{POI: []POIImport{{Name: "A", Cost: ptrFloat(-1)}}}},
		{"negative duration", CityImport{POI: []POIImport{{Name: "A", DurationMin: ptrInt(-5)}}}},
		{"duration longer than a day", CityImport{POI: []POIImport{{Name: "A", DurationMin: ptrInt(MaxDurationMin + 1)}}}},
		{"rating above five", CityImport{POI: []POIImport{{Name: "A", Rating: ptrFloat(5.5)}}}},
		{"negative reviews", CityImport{POI: []POIImport{{Name: "A", Reviews: ptrInt(-1)}}}},
		{"lat without lon", CityImport{POI: []POIImport{{Name: "A", Lat: ptrFloat(10)}}}},
		{"lat out of range", CityImport{POI: []POIImport{{Name: "A", Lat: ptrFloat(91), Lon: ptrFloat(0)}}}},
		{"short center", CityImport{Center: []float64{17}}},
		{"center lon out of range", CityImport{Center: []float64{17, 181}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(File{"City": tt.city})
			assert.Len(t, errs, 1, "%v", errs)
		})
	}
}

func TestSample_IsValid(t *testing.T) {
	f, err := Sample()
	require.NoError(t, err)
	assert.Empty(t, Validate(f))

	cities := Convert(f)
	require.NotEmpty(t, cities)
	for _, c := range cities {
		assert.NotEmpty(t, c.POIs, c.Name)
	}
}
