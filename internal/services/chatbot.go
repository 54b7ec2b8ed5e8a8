package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Assistant answers vendor questions about ingredients, suppliers and
// running a street food business from a built-in FAQ table.
type Assistant struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewAssistant creates an assistant seeded from the current time.
func NewAssistant() *Assistant {
	return &Assistant{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

var storageTips = map[string]string{
	"onion":  "Store onions in a cool, dry place with good ventilation. Avoid storing near potatoes as they release gases that can spoil onions faster.",
	"tomato": "Store tomatoes at room temperature until ripe, then refrigerate. Don't store in plastic bags as they need air circulation.",
	"potato": "Store potatoes in a cool, dark place (not refrigerator). Keep them dry and away from onions.",
	"rice":   "Store rice in an airtight container in a cool, dry place. Brown rice should be refrigerated due to its oil content.",
	"flour":  "Store flour in an airtight container in a cool, dry place. Whole wheat flour should be refrigerated.",
	"oil":    "Store cooking oil in a cool, dark place away from heat sources. Keep the container tightly sealed.",
	"spices": "Store spices in airtight containers away from heat, light, and moisture. Ground spices lose potency faster than whole spices.",
}

var pricingInfo = map[string]string{
	"onion":  "Current market price for onions ranges from ₹20-40 per kg depending on quality and season.",
	"tomato": "Tomato prices typically range from ₹30-60 per kg, with seasonal variations.",
	"potato": "Potato prices are usually stable around ₹25-35 per kg.",
	"rice":   "Rice prices vary by type: Basmati ₹80-120/kg, regular rice ₹40-60/kg.",
	"flour":  "Wheat flour costs ₹30-45 per kg, depending on quality and brand.",
}

var qualityTips = map[string]string{
	"onion":  "Good onions should be firm, have dry outer skin, and no soft spots or mold.",
	"tomato": "Ripe tomatoes should be firm but slightly soft, with bright color and no cracks.",
	"potato": "Quality potatoes should be firm, smooth, and free from sprouts or green spots.",
	"rice":   "Good rice should be clean, uniform in size, and free from insects or foreign matter.",
}

var citySuppliers = map[string]string{
	"mumbai":    "Top suppliers in Mumbai: Fresh Vegetables Co., Mumbai Market Hub, Quality Foods Ltd.",
	"delhi":     "Top suppliers in Delhi: Delhi Fresh Foods, Capital Vegetables, Quality Supply Co.",
	"bangalore": "Top suppliers in Bangalore: Bangalore Fresh, Garden City Foods, Quality Veggies.",
}

var greetingResponses = []string{
	"Namaste! How can I help you with your street food business today?",
	"Hello! I'm here to help you find the best suppliers and manage your business better.",
	"Welcome to Saathi! What would you like to know about suppliers or ingredients?",
}

var helpResponses = []string{
	"I can help you with:\n• Storage tips for ingredients\n• Current market prices\n• Quality checking tips\n• Finding suppliers in your area\n• Business advice for street food vendors",
	"Here's what I can assist you with:\n• Ingredient storage and handling\n• Market price information\n• Quality assessment\n• Supplier recommendations\n• Business tips and tricks",
}

var unknownResponses = []string{
	"I'm not sure about that. Could you ask me about ingredient storage, prices, quality tips, or supplier recommendations?",
	"I don't have information on that topic. I can help with storage tips, pricing, quality checks, or finding suppliers.",
	"That's beyond my knowledge. Try asking about ingredients, suppliers, or business tips!",
}

// BusinessTips are general tips for street food vendors.
var BusinessTips = []string{
	"Always maintain high hygiene standards - customers notice cleanliness",
	"Source fresh ingredients daily for better taste and customer satisfaction",
	"Build relationships with reliable suppliers for consistent quality",
	"Keep your menu simple but delicious - quality over quantity",
	"Use social media to promote your business and attract customers",
	"Offer combo deals to increase average order value",
	"Maintain consistent pricing while ensuring good profit margins",
	"Get customer feedback regularly to improve your offerings",
	"Keep track of your expenses and profits daily",
	"Invest in good equipment and maintain it regularly",
}

var knownIngredients = []string{
	"onion", "tomato", "potato", "rice", "flour", "oil", "spices",
	"chicken", "fish", "vegetables",
}

var knownCities = []string{
	"mumbai", "delhi", "bangalore", "siliguri", "darjeeling",
	"jalpaiguri", "cooch behar",
}

// Respond generates an answer for a vendor's question. Matching is keyword
// based: the first category whose trigger words appear in the message wins.
func (a *Assistant) Respond(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	if containsAny(msg, "hello", "hi", "namaste", "hey") {
		return a.pick(greetingResponses)
	}

	if containsAny(msg, "help", "what can you do", "assist") {
		return a.pick(helpResponses)
	}

	if containsAny(msg, "store", "storage", "keep", "preserve") {
		return storageAnswer(msg)
	}

	if containsAny(msg, "price", "cost", "rate", "how much") {
		return pricingAnswer(msg)
	}

	if containsAny(msg, "quality", "good", "fresh", "check") {
		return qualityAnswer(msg)
	}

	if containsAny(msg, "supplier", "vendor", "where to buy", "source") {
		return supplierAnswer(msg)
	}

	if containsAny(msg, "business", "profit", "margin", "earn") {
		return businessAnswer(msg)
	}

	for _, ingredient := range knownIngredients {
		if strings.Contains(msg, ingredient) {
			return ingredientAnswer(msg, ingredient)
		}
	}

	return a.pick(unknownResponses)
}

func storageAnswer(msg string) string {
	for _, ingredient := range []string{"onion", "tomato", "potato", "rice", "flour", "oil", "spices"} {
		if strings.Contains(msg, ingredient) {
			return storageTips[ingredient]
		}
	}
	return "For storage tips, please specify the ingredient. I can help with onions, tomatoes, potatoes, rice, flour, oil, and spices."
}

func pricingAnswer(msg string) string {
	for _, ingredient := range []string{"onion", "tomato", "potato", "rice", "flour"} {
		if strings.Contains(msg, ingredient) {
			return pricingInfo[ingredient]
		}
	}
	return "For pricing information, please specify the ingredient. I can help with onions, tomatoes, potatoes, rice, and flour."
}

func qualityAnswer(msg string) string {
	for _, ingredient := range []string{"onion", "tomato", "potato", "rice"} {
		if strings.Contains(msg, ingredient) {
			return qualityTips[ingredient]
		}
	}
	return "For quality tips, please specify the ingredient. I can help with onions, tomatoes, potatoes, and rice."
}

func supplierAnswer(msg string) string {
	for _, city := range knownCities {
		if strings.Contains(msg, city) {
			if answer, ok := citySuppliers[city]; ok {
				return answer
			}
			return "I don't have supplier information for " + city + "."
		}
	}
	return "I can help you find suppliers in Mumbai, Delhi, Bangalore, and West Bengal cities like Siliguri, Darjeeling, Jalpaiguri, and Cooch Behar. Which city are you in?"
}

func businessAnswer(msg string) string {
	if strings.Contains(msg, "profit") || strings.Contains(msg, "margin") {
		return "For street food businesses, typical profit margins range from 30-50%. Focus on quality ingredients, efficient operations, and good customer service to maximize profits."
	}
	if strings.Contains(msg, "earn") || strings.Contains(msg, "income") {
		return "Street food vendors can earn ₹500-2000 per day depending on location, menu, and business hours. Popular locations and unique recipes can significantly increase earnings."
	}
	return "For business success: 1) Use quality ingredients 2) Maintain hygiene 3) Offer good customer service 4) Find reliable suppliers 5) Keep costs low while maintaining quality."
}

func ingredientAnswer(msg, ingredient string) string {
	if strings.Contains(msg, "storage") || strings.Contains(msg, "store") {
		if tip, ok := storageTips[ingredient]; ok {
			return tip
		}
		return "I don't have storage tips for " + ingredient + "."
	}
	if strings.Contains(msg, "price") || strings.Contains(msg, "cost") {
		if info, ok := pricingInfo[ingredient]; ok {
			return info
		}
		return "I don't have pricing for " + ingredient + "."
	}
	if strings.Contains(msg, "quality") || strings.Contains(msg, "fresh") {
		if tip, ok := qualityTips[ingredient]; ok {
			return tip
		}
		return "I don't have quality tips for " + ingredient + "."
	}
	return "I can help you with storage, pricing, and quality information for " + ingredient + ". What would you like to know?"
}

// SeasonalAdvice returns business advice for the current season.
func (a *Assistant) SeasonalAdvice() string {
	switch a.now().Month() {
	case time.March, time.April, time.May:
		return "Focus on cooling drinks and light snacks. Stock up on ice and cold storage."
	case time.June, time.July, time.August, time.September:
		return "Ensure your setup is waterproof. Offer hot beverages and fried snacks."
	default:
		return "Hot beverages and warm snacks sell well. Consider adding soup to your menu."
	}
}

func (a *Assistant) pick(responses []string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return responses[a.rng.Intn(len(responses))]
}

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
