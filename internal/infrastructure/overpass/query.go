package overpass

import (
	"fmt"
	"strings"

	"github.com/eatgo-discovery/internal/domain"
)

// Tag filter sets for venues that serve or sell food. Unioned in every query;
// the cuisine clause narrows each set separately when a category is active.
const (
	amenityPattern = "restaurant|cafe|fast_food|food_court"
	shopPattern    = "bakery|confectionery|ice_cream|beverages"
)

// elementCap bounds downstream work at query time. Elements beyond the cap
// are simply absent from the result, not evidence of sparsity.
const elementCap = 120

// serverTimeoutSec is the interpreter-side timeout embedded in the query.
const serverTimeoutSec = 25

// BuildQuery renders the Overpass QL text for one discovery request: food
// amenities and food-retail shops within the radius, unioned, plus a
// cuisine-narrowed union when the category has a cuisine pattern.
func BuildQuery(center domain.Location, radius domain.RadiusKm, category domain.FoodCategory) string {
	around := fmt.Sprintf("(around:%d,%v,%v)", radius.Meters(), center.Lat, center.Lng)
	cuisine := category.CuisinePattern()

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", serverTimeoutSec)
	fmt.Fprintf(&b, "  nwr%s[\"amenity\"~\"%s\"];\n", around, amenityPattern)
	fmt.Fprintf(&b, "  nwr%s[\"shop\"~\"%s\"];\n", around, shopPattern)
	if cuisine != "" {
		b.WriteString("  (\n")
		fmt.Fprintf(&b, "    nwr%s[\"amenity\"~\"%s\"][\"cuisine\"~\"%s\"];\n", around, amenityPattern, cuisine)
		fmt.Fprintf(&b, "    nwr%s[\"shop\"~\"%s\"][\"cuisine\"~\"%s\"];\n", around, shopPattern, cuisine)
		b.WriteString("  );\n")
	}
	fmt.Fprintf(&b, ");\nout center %d;\n", elementCap)

	return b.String()
}
