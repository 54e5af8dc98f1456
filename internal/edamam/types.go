package edamam

// searchResponse is the top-level shape of an Edamam search response.
type searchResponse struct {
	Hits []Hit `json:"hits"`
}

// Hit is one search result entry, wrapping a recipe object.
type Hit struct {
	Recipe RecipeData `json:"recipe"`
}

// RecipeData carries the recipe fields this system consumes. The API
// returns many more fields; they are ignored.
type RecipeData struct {
	Label  string `json:"label"`
	Image  string `json:"image"`
	Source string `json:"source"`
	URL    string `json:"url"`
}
