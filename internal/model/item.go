package model

// Item is the catalog record handled by the item endpoints.
// Description and Tax are optional: nil means the field was absent from
// the request, which stays distinct from an empty or zero value.
type Item struct {
	Name        string
	Description *string
	Price       float64
	Tax         *float64
}

// FixtureItems is illustrative static data, initialized once and never
// mutated. No handler reads it.
var FixtureItems = []Item{
	{Name: "Foo", Price: 50.2},
	{Name: "Bar", Price: 62.0},
	{Name: "Baz", Price: 50.2},
}
