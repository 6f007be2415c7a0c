// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"sort"
	"strings"
)

// Occasion tags understood by ForOccasion.
const (
	OccasionQuickMeals  = "quick_meals"
	OccasionComfortFood = "comfort_food"
	OccasionHealthy     = "healthy"
	OccasionParty       = "party"
	OccasionRomantic    = "romantic"
	OccasionFamily      = "family"
	OccasionWeekend     = "weekend"
)

var cuisineKeywords = map[string][]string{
	"italian":        {"italian", "pasta", "pizza", "risotto", "lasagna", "spaghetti", "carbonara", "pesto", "parmesan", "gnocchi"},
	"mexican":        {"mexican", "taco", "burrito", "enchilada", "quesadilla", "salsa", "guacamole", "fajita", "tortilla"},
	"chinese":        {"chinese", "stir fry", "stir-fry", "dumpling", "wonton", "chow mein", "fried rice", "kung pao", "szechuan"},
	"indian":         {"indian", "curry", "masala", "tandoori", "biryani", "dal", "naan", "paneer", "tikka"},
	"japanese":       {"japanese", "sushi", "ramen", "teriyaki", "tempura", "miso", "udon", "katsu"},
	"thai":           {"thai", "pad thai", "green curry", "red curry", "tom yum", "lemongrass", "satay"},
	"french":         {"french", "croissant", "quiche", "ratatouille", "crepe", "souffle", "bourguignon", "baguette"},
	"mediterranean":  {"mediterranean", "hummus", "falafel", "feta", "olive", "tzatziki", "couscous"},
	"greek":          {"greek", "gyro", "souvlaki", "moussaka", "spanakopita", "tzatziki", "feta"},
	"american":       {"american", "burger", "barbecue", "bbq", "mac and cheese", "hot dog", "pancake", "fried chicken"},
	"korean":         {"korean", "kimchi", "bulgogi", "bibimbap", "gochujang", "japchae"},
	"spanish":        {"spanish", "paella", "tapas", "chorizo", "gazpacho", "tortilla espanola"},
	"middle eastern": {"middle eastern", "shawarma", "kebab", "tahini", "za'atar", "shakshuka"},
	"vietnamese":     {"vietnamese", "pho", "banh mi", "spring roll", "vermicelli"},
}

var dietaryKeywords = map[string][]string{
	"vegetarian":  {"vegetarian", "veggie", "meatless"},
	"vegan":       {"vegan", "plant-based", "plant based", "dairy-free", "egg-free"},
	"gluten-free": {"gluten-free", "gluten free", "celiac"},
	"dairy-free":  {"dairy-free", "dairy free", "lactose-free", "non-dairy"},
	"keto":        {"keto", "ketogenic", "low-carb", "low carb"},
	"paleo":       {"paleo", "grain-free", "grain free"},
	"low-carb":    {"low-carb", "low carb", "keto"},
	"low-fat":     {"low-fat", "low fat", "light", "lean"},
	"nut-free":    {"nut-free", "nut free"},
	"pescatarian": {"pescatarian", "fish", "seafood", "salmon", "shrimp", "tuna"},
}

var mealTypeKeywords = map[string][]string{
	"breakfast": {"breakfast", "pancake", "waffle", "omelette", "omelet", "granola", "oatmeal", "smoothie", "eggs"},
	"brunch":    {"brunch", "frittata", "benedict", "french toast", "quiche"},
	"lunch":     {"lunch", "sandwich", "wrap", "salad", "soup", "bowl"},
	"dinner":    {"dinner", "roast", "steak", "casserole", "stew", "curry", "pasta"},
	"snack":     {"snack", "dip", "bites", "chips", "bar", "popcorn"},
	"dessert":   {"dessert", "cake", "cookie", "pie", "brownie", "pudding", "ice cream", "tart", "chocolate"},
	"appetizer": {"appetizer", "starter", "bruschetta", "crostini", "canape"},
}

var occasionKeywords = map[string][]string{
	OccasionQuickMeals:  {"quick", "easy", "fast", "simple", "15-minute", "30-minute", "one-pot", "one pan", "sheet pan", "weeknight"},
	OccasionComfortFood: {"comfort", "creamy", "cheesy", "hearty", "stew", "casserole", "mac and cheese", "soup", "pot pie", "mashed"},
	OccasionHealthy:     {"healthy", "light", "fresh", "salad", "grilled", "steamed", "quinoa", "low-fat", "nutritious", "green"},
	OccasionParty:       {"party", "appetizer", "dip", "finger food", "platter", "bites", "sliders", "wings", "punch", "crowd"},
	OccasionRomantic:    {"romantic", "date night", "elegant", "candlelight", "for two", "chocolate", "wine", "steak", "lobster", "champagne"},
	OccasionFamily:      {"family", "kid", "kids", "crowd-pleaser", "weeknight", "casserole", "lasagna", "meatloaf", "tacos", "pizza"},
	OccasionWeekend:     {"weekend", "brunch", "slow cooker", "roast", "barbecue", "bbq", "homemade", "baking", "braised", "project"},
}

var categoryKeywords = map[string][]string{
	"desserts":    {"dessert", "cake", "cookie", "pie", "brownie", "pudding", "ice cream", "tart", "chocolate", "sweet"},
	"main-course": {"main", "dinner", "roast", "steak", "chicken", "beef", "pork", "casserole", "pasta", "curry"},
	"appetizers":  {"appetizer", "starter", "dip", "bites", "bruschetta", "finger food", "wings"},
	"soups":       {"soup", "stew", "chowder", "broth", "bisque", "chili", "ramen", "pho"},
	"salads":      {"salad", "slaw", "greens", "vinaigrette"},
	"breakfast":   {"breakfast", "pancake", "waffle", "omelette", "omelet", "granola", "oatmeal", "eggs", "toast"},
	"beverages":   {"drink", "smoothie", "juice", "cocktail", "lemonade", "tea", "coffee", "shake", "punch"},
	"snacks":      {"snack", "chips", "popcorn", "bar", "trail mix", "bites"},
	"baking":      {"bread", "bake", "baked", "muffin", "scone", "loaf", "roll", "pastry"},
	"sides":       {"side", "mashed", "roasted vegetables", "fries", "rice", "coleslaw", "gratin"},
}

// normalizeTag lowercases and trims a tag.
func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// lookupOrSelf returns the keywords for tag, or the tag itself when the
// table has no entry. Empty tags return nil.
func lookupOrSelf(table map[string][]string, tag string) []string {
	key := normalizeTag(tag)
	if key == "" {
		return nil
	}
	if kw, ok := table[key]; ok {
		return kw
	}
	return []string{key}
}

// CuisineKeywords returns the keywords for a cuisine tag.
func CuisineKeywords(cuisine string) []string {
	return lookupOrSelf(cuisineKeywords, cuisine)
}

// DietaryKeywords returns the keywords for a dietary restriction tag.
func DietaryKeywords(restriction string) []string {
	return lookupOrSelf(dietaryKeywords, restriction)
}

// MealTypeKeywords returns the keywords for a meal-type tag.
func MealTypeKeywords(mealType string) []string {
	return lookupOrSelf(mealTypeKeywords, mealType)
}

// OccasionKeywords returns the keywords for an occasion tag, or nil for an
// unknown occasion.
func OccasionKeywords(occasion string) []string {
	return occasionKeywords[normalizeTag(occasion)]
}

// CategoryKeywords returns the keywords for a category tag, or nil for an
// unknown category. Spaces and underscores match hyphens, so "Main Course"
// finds "main-course".
func CategoryKeywords(category string) []string {
	key := strings.NewReplacer(" ", "-", "_", "-").Replace(normalizeTag(category))
	return categoryKeywords[key]
}

// Occasions lists the known occasion tags in sorted order.
func Occasions() []string {
	return sortedKeys(occasionKeywords)
}

// Categories lists the known category tags in sorted order.
func Categories() []string {
	return sortedKeys(categoryKeywords)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
