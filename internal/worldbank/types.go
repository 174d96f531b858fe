package worldbank

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Country is one entry from the /country listing. Aggregate rows (regions,
// income groups) are filtered out by the client.
type Country struct {
	ISO3   string
	Name   string
	Region string
}

// Observation is one (country, year) value of an indicator series. Value is
// nil where the source reports no data for that year.
type Observation struct {
	ISO3  string
	Year  int
	Value *float64
}

// pageMeta is the first element of every API envelope.
type pageMeta struct {
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	PerPage intOrString `json:"per_page"`
	Total   int         `json:"total"`
}

// intOrString tolerates the API returning per_page as either a JSON number
// (indicator endpoints) or a quoted string (country endpoint).
type intOrString int

func (n *intOrString) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("per_page %q: %w", s, err)
	}
	*n = intOrString(v)
	return nil
}

// apiCountry is the wire shape of a /country row.
type apiCountry struct {
	ID       string `json:"id"`
	ISO2Code string `json:"iso2Code"`
	Name     string `json:"name"`
	Region   struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"region"`
}

// apiObservation is the wire shape of an indicator row.
type apiObservation struct {
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	CountryISO3 string   `json:"countryiso3code"`
	Date        string   `json:"date"`
	Value       *float64 `json:"value"`
}

// apiMessage is the error envelope the API returns instead of data, e.g.
// for an unknown indicator code.
type apiMessage struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}
