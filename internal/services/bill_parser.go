package services

import "strings"

// commonMaterials are the ingredients street food vendors typically buy.
// Singular and plural forms are listed separately because the matcher works
// on plain substrings.
var commonMaterials = []string{
	"onion", "onions", "tomato", "tomatoes", "potato", "potatoes",
	"ginger", "garlic", "chili", "chillies", "coriander", "mint",
	"lemon", "lime", "oil", "ghee", "butter", "flour", "rice",
	"lentils", "pulses", "spices", "salt", "sugar", "milk",
	"cheese", "bread", "eggs", "chicken", "mutton", "fish",
	"vegetables", "fruits", "herbs", "seasoning", "sauce",
	"ketchup", "mayonnaise", "mustard", "vinegar", "soy sauce",
}

// ParseRawMaterials scans OCR text for known raw materials and returns the
// title-cased names of those found, in the order they appear in the known
// materials list, deduplicated.
func ParseRawMaterials(text string) []string {
	lower := strings.ToLower(text)

	found := []string{}
	seen := make(map[string]struct{})
	for _, material := range commonMaterials {
		if !strings.Contains(lower, material) {
			continue
		}
		name := titleCase(material)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		found = append(found, name)
	}

	return found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
