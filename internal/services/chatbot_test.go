package services

import (
	"strings"
	"testing"
	"time"
)

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestAssistant_Respond_Deterministic(t *testing.T) {
	a := NewAssistant()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "storage question",
			message: "How should I store onions?",
			want:    storageTips["onion"],
		},
		{
			name:    "price question",
			message: "What's the price of tomatoes?",
			want:    pricingInfo["tomato"],
		},
		{
			name:    "quality question",
			message: "How to check rice quality?",
			want:    qualityTips["rice"],
		},
		{
			name:    "supplier question with city",
			message: "Find suppliers in Mumbai",
			want:    citySuppliers["mumbai"],
		},
		{
			name:    "supplier question for city without data",
			message: "Any suppliers in Siliguri?",
			want:    "I don't have supplier information for siliguri.",
		},
		{
			name:    "supplier question without city",
			message: "Where can I find a supplier?",
			want:    "I can help you find suppliers in Mumbai, Delhi, Bangalore, and West Bengal cities like Siliguri, Darjeeling, Jalpaiguri, and Cooch Behar. Which city are you in?",
		},
		{
			name:    "profit question",
			message: "How to increase profit?",
			want:    "For street food businesses, typical profit margins range from 30-50%. Focus on quality ingredients, efficient operations, and good customer service to maximize profits.",
		},
		{
			name:    "income question",
			message: "How much can I earn?",
			want:    pricingAnswer("how much can i earn?"),
		},
		{
			name:    "storage question without ingredient",
			message: "How do I store things?",
			want:    "For storage tips, please specify the ingredient. I can help with onions, tomatoes, potatoes, rice, flour, oil, and spices.",
		},
		{
			name:    "bare ingredient mention",
			message: "tell me about chicken",
			want:    "I can help you with storage, pricing, and quality information for chicken. What would you like to know?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Respond(tt.message)
			if got != tt.want {
				t.Errorf("Respond(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestAssistant_Respond_RandomPools(t *testing.T) {
	a := NewAssistant()

	tests := []struct {
		name    string
		message string
		pool    []string
	}{
		{"greeting", "Namaste!", greetingResponses},
		{"help", "What can you do?", helpResponses},
		{"unknown", "Tell me a joke", unknownResponses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				got := a.Respond(tt.message)
				if !contains(tt.pool, got) {
					t.Fatalf("Respond(%q) = %q, not in expected response pool", tt.message, got)
				}
			}
		})
	}
}

func TestAssistant_SeasonalAdvice(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.April, "Focus on cooling drinks and light snacks. Stock up on ice and cold storage."},
		{time.July, "Ensure your setup is waterproof. Offer hot beverages and fried snacks."},
		{time.December, "Hot beverages and warm snacks sell well. Consider adding soup to your menu."},
		{time.January, "Hot beverages and warm snacks sell well. Consider adding soup to your menu."},
	}

	for _, tt := range tests {
		a := NewAssistant()
		a.now = func() time.Time {
			return time.Date(2026, tt.month, 15, 12, 0, 0, 0, time.UTC)
		}
		if got := a.SeasonalAdvice(); got != tt.want {
			t.Errorf("SeasonalAdvice() in %s = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestBusinessTips_NotEmpty(t *testing.T) {
	if len(BusinessTips) == 0 {
		t.Fatal("expected business tips to be populated")
	}
	for i, tip := range BusinessTips {
		if strings.TrimSpace(tip) == "" {
			t.Errorf("tip %d is blank", i)
		}
	}
}
