package persona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := persona.DefaultCatalog()

	states := catalog.States()
	require.Len(t, states, 50, "the embedded catalog covers all US states")

	for _, state := range states {
		assert.Lenf(t, catalog.StateCode(state), 2, "state %q must have a 2-letter code", state)
		assert.Lenf(t, catalog.Places(state), 5, "state %q must register 5 public places", state)
		assert.NotEmptyf(t, catalog.AreaCodes(state), "state %q must register area codes", state)
	}

	assert.Equal(t, "WY", catalog.StateCode("Wyoming"))
	assert.Equal(t, []string{"307"}, catalog.AreaCodes("Wyoming"))

	for _, place := range catalog.Places("Wyoming") {
		assert.NotEmpty(t, place.Name)
		assert.NotEmpty(t, place.Street)
		assert.NotEmpty(t, place.City)
		assert.Len(t, place.Zip, 5)
	}
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := persona.DefaultCatalog()

	for input, want := range map[string]string{
		"Wyoming":        "Wyoming",
		"wyoming":        "Wyoming",
		"WYOMING":        "Wyoming",
		" new hampshire": "New Hampshire",
		"rhode island":   "Rhode Island",
	} {
		got, err := catalog.Resolve(input)
		require.NoErrorf(t, err, "input %q must resolve", input)
		assert.Equal(t, want, got)
	}

	_, err := catalog.Resolve("Atlantis")
	require.ErrorIs(t, err, persona.ErrUnknownState)

	_, err = catalog.Resolve("")
	require.ErrorIs(t, err, persona.ErrUnknownState)
}

func TestParseCatalog_Validation(t *testing.T) {
	cases := map[string]string{
		"not yaml": "{[",
		"missing last names": `
first_names:
  male: [John]
states:
  - name: Testland
    code: TL
    area_codes: ["555"]
    places:
      - {name: Library, street: 1 Way, city: Town, zip: "00001"}
`,
		"missing places": `
first_names:
  male: [John]
last_names: [Smith]
states:
  - name: Testland
    code: TL
    area_codes: ["555"]
`,
		"missing area codes": `
first_names:
  male: [John]
last_names: [Smith]
states:
  - name: Testland
    code: TL
    places:
      - {name: Library, street: 1 Way, city: Town, zip: "00001"}
`,
		"bad state code": `
first_names:
  male: [John]
last_names: [Smith]
states:
  - name: Testland
    code: TLX
    area_codes: ["555"]
    places:
      - {name: Library, street: 1 Way, city: Town, zip: "00001"}
`,
		"no states": `
first_names:
  male: [John]
last_names: [Smith]
states: []
`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := persona.ParseCatalog([]byte(data))
			require.ErrorIs(t, err, persona.ErrInvalidCatalog)
		})
	}
}
