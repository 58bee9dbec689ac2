package grocery

import (
	"strings"

	"shoplist-api/internal/models"
)

// Categorize suggests a category for the given item name.
// It performs case-insensitive matching: exact match first, then substring
// match. Falls back to the "other" category if no keyword matches. The
// suggestion never overrides an explicitly chosen category.
func Categorize(itemName string) models.Category {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return models.CategoryOther
	}

	// Phase 1: exact match
	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Phase 2: substring match (ordered longer/more-specific first)
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return models.CategoryOther
}

var exactMatch = map[string]models.Category{
	// Fruits
	"apple":        models.CategoryFruits,
	"apples":       models.CategoryFruits,
	"banana":       models.CategoryFruits,
	"bananas":      models.CategoryFruits,
	"orange":       models.CategoryFruits,
	"oranges":      models.CategoryFruits,
	"lemon":        models.CategoryFruits,
	"lime":         models.CategoryFruits,
	"grapes":       models.CategoryFruits,
	"strawberries": models.CategoryFruits,
	"blueberries":  models.CategoryFruits,
	"watermelon":   models.CategoryFruits,
	"pineapple":    models.CategoryFruits,
	"mango":        models.CategoryFruits,
	"peach":        models.CategoryFruits,
	"pear":         models.CategoryFruits,

	// Vegetables
	"tomato":   models.CategoryVegetables,
	"tomatoes": models.CategoryVegetables,
	"potato":   models.CategoryVegetables,
	"potatoes": models.CategoryVegetables,
	"onion":    models.CategoryVegetables,
	"onions":   models.CategoryVegetables,
	"garlic":   models.CategoryVegetables,
	"lettuce":  models.CategoryVegetables,
	"spinach":  models.CategoryVegetables,
	"broccoli": models.CategoryVegetables,
	"carrots":  models.CategoryVegetables,
	"celery":   models.CategoryVegetables,
	"cucumber": models.CategoryVegetables,
	"zucchini": models.CategoryVegetables,

	// Meats
	"chicken": models.CategoryMeats,
	"beef":    models.CategoryMeats,
	"pork":    models.CategoryMeats,
	"turkey":  models.CategoryMeats,
	"bacon":   models.CategoryMeats,
	"sausage": models.CategoryMeats,
	"ham":     models.CategoryMeats,
	"steak":   models.CategoryMeats,
	"salmon":  models.CategoryMeats,
	"shrimp":  models.CategoryMeats,
	"tuna":    models.CategoryMeats,
	"fish":    models.CategoryMeats,

	// Dairy
	"milk":       models.CategoryDairy,
	"eggs":       models.CategoryDairy,
	"butter":     models.CategoryDairy,
	"cheese":     models.CategoryDairy,
	"yogurt":     models.CategoryDairy,
	"sour cream": models.CategoryDairy,

	// Bakery
	"bread":      models.CategoryBakery,
	"bagels":     models.CategoryBakery,
	"tortillas":  models.CategoryBakery,
	"rolls":      models.CategoryBakery,
	"buns":       models.CategoryBakery,
	"muffins":    models.CategoryBakery,
	"croissants": models.CategoryBakery,

	// Cleaning
	"paper towels":      models.CategoryCleaning,
	"trash bags":        models.CategoryCleaning,
	"dish soap":         models.CategoryCleaning,
	"laundry detergent": models.CategoryCleaning,
	"sponges":           models.CategoryCleaning,
	"bleach":            models.CategoryCleaning,

	// Hygiene
	"shampoo":      models.CategoryHygiene,
	"conditioner":  models.CategoryHygiene,
	"soap":         models.CategoryHygiene,
	"toothpaste":   models.CategoryHygiene,
	"toothbrush":   models.CategoryHygiene,
	"deodorant":    models.CategoryHygiene,
	"toilet paper": models.CategoryHygiene,

	// Beverages
	"water":  models.CategoryBeverages,
	"juice":  models.CategoryBeverages,
	"coffee": models.CategoryBeverages,
	"tea":    models.CategoryBeverages,
	"soda":   models.CategoryBeverages,
	"beer":   models.CategoryBeverages,
	"wine":   models.CategoryBeverages,

	// Frozen
	"ice cream":      models.CategoryFrozen,
	"frozen pizza":   models.CategoryFrozen,
	"frozen veggies": models.CategoryFrozen,
	"popsicles":      models.CategoryFrozen,
}

type substringEntry struct {
	keyword  string
	category models.Category
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Frozen wins over the base item ("frozen fruit" is frozen, not fruit)
	{"frozen", models.CategoryFrozen},
	{"ice cream", models.CategoryFrozen},
	{"popsicle", models.CategoryFrozen},

	// Meats - longer phrases first
	{"chicken breast", models.CategoryMeats},
	{"ground beef", models.CategoryMeats},
	{"ground turkey", models.CategoryMeats},
	{"pork chop", models.CategoryMeats},
	{"hot dog", models.CategoryMeats},
	{"chicken", models.CategoryMeats},
	{"beef", models.CategoryMeats},
	{"steak", models.CategoryMeats},
	{"fish", models.CategoryMeats},

	// Dairy
	{"cream cheese", models.CategoryDairy},
	{"sour cream", models.CategoryDairy},
	{"greek yogurt", models.CategoryDairy},
	{"yogurt", models.CategoryDairy},
	{"cheese", models.CategoryDairy},
	{"milk", models.CategoryDairy},
	{"butter", models.CategoryDairy},
	{"cream", models.CategoryDairy},
	{"egg", models.CategoryDairy},

	// Vegetables
	{"sweet potato", models.CategoryVegetables},
	{"bell pepper", models.CategoryVegetables},
	{"cherry tomato", models.CategoryVegetables},
	{"green bean", models.CategoryVegetables},
	{"cauliflower", models.CategoryVegetables},
	{"cabbage", models.CategoryVegetables},
	{"squash", models.CategoryVegetables},
	{"lettuce", models.CategoryVegetables},
	{"spinach", models.CategoryVegetables},
	{"tomato", models.CategoryVegetables},
	{"potato", models.CategoryVegetables},
	{"onion", models.CategoryVegetables},
	{"pepper", models.CategoryVegetables},
	{"carrot", models.CategoryVegetables},

	// Fruits
	{"berries", models.CategoryFruits},
	{"berry", models.CategoryFruits},
	{"melon", models.CategoryFruits},
	{"apple", models.CategoryFruits},
	{"banana", models.CategoryFruits},
	{"grape", models.CategoryFruits},
	{"fruit", models.CategoryFruits},

	// Bakery
	{"sourdough", models.CategoryBakery},
	{"whole wheat", models.CategoryBakery},
	{"bread", models.CategoryBakery},
	{"bagel", models.CategoryBakery},
	{"tortilla", models.CategoryBakery},
	{"croissant", models.CategoryBakery},
	{"muffin", models.CategoryBakery},

	// Beverages
	{"sparkling water", models.CategoryBeverages},
	{"orange juice", models.CategoryBeverages},
	{"coffee", models.CategoryBeverages},
	{"juice", models.CategoryBeverages},
	{"soda", models.CategoryBeverages},
	{"water", models.CategoryBeverages},
	{"beer", models.CategoryBeverages},
	{"wine", models.CategoryBeverages},
	{"tea", models.CategoryBeverages},

	// Cleaning
	{"paper towel", models.CategoryCleaning},
	{"trash bag", models.CategoryCleaning},
	{"garbage bag", models.CategoryCleaning},
	{"dish soap", models.CategoryCleaning},
	{"laundry", models.CategoryCleaning},
	{"detergent", models.CategoryCleaning},
	{"cleaner", models.CategoryCleaning},
	{"cleaning", models.CategoryCleaning},
	{"sponge", models.CategoryCleaning},
	{"bleach", models.CategoryCleaning},

	// Hygiene
	{"toilet paper", models.CategoryHygiene},
	{"body wash", models.CategoryHygiene},
	{"shampoo", models.CategoryHygiene},
	{"conditioner", models.CategoryHygiene},
	{"toothpaste", models.CategoryHygiene},
	{"toothbrush", models.CategoryHygiene},
	{"deodorant", models.CategoryHygiene},
	{"lotion", models.CategoryHygiene},
	{"razor", models.CategoryHygiene},
	{"soap", models.CategoryHygiene},
}
