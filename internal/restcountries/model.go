package restcountries

// response mirrors one entry of the restcountries v2 "all" payload.
// Only the fields the service consumes are mapped.
type response struct {
	Name       string `json:"name"`
	Capital    string `json:"capital"`
	Region     string `json:"region"`
	Population int64  `json:"population"`
	Flag       string `json:"flag"`
	Currencies []struct {
		Code string `json:"code"`
	} `json:"currencies"`
}

// RawCountry is the application's internal representation of one catalog
// entry after parsing.
//
// CurrencyCode is the first code listed by the source, or empty when the
// source lists none. Entries without a name are dropped during parsing and
// never reach this type.
type RawCountry struct {
	Name         string
	Capital      string
	Region       string
	Population   int64
	CurrencyCode string
	FlagURL      string
}
