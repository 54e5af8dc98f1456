package testutil

import "fmt"

// SearchResponseJSON builds a minimal Edamam search response body with
// one hit per (label, image, source, url) quadruple.
func SearchResponseJSON(hits ...[4]string) []byte {
	body := `{"hits":[`
	for i, h := range hits {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(
			`{"recipe":{"label":%q,"image":%q,"source":%q,"url":%q}}`,
			h[0], h[1], h[2], h[3],
		)
	}
	return []byte(body + `]}`)
}

// OneHitResponse is a canned response with a single apple pie hit.
func OneHitResponse() []byte {
	return SearchResponseJSON([4]string{
		"Apple Butter Pie",
		"http://img.example.com/pie.jpg",
		"Example Kitchen",
		"http://example.com/apple-butter-pie",
	})
}
