package analysis

import (
	"strings"

	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/ryanuber/go-glob"
)

type rule struct {
	Category models.Category
	Patterns []string
}

func newRule(category models.Category, keywords ...string) rule {
	patterns := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		patterns = append(patterns, "*"+keyword+"*")
	}

	return rule{Category: category, Patterns: patterns}
}

// rules are checked in order, the first one with a matching pattern wins.
// A description mentioning both rent and netflix is Housing.
var rules = []rule{
	newRule(models.CategoryHousing, "rent", "mortgage", "housing"),
	newRule(models.CategoryFood, "food", "grocer", "restaurant", "swiggy", "zomato"),
	newRule(models.CategoryTravel, "transport", "uber", "ola", "taxi", "metro", "petrol", "gas"),
	newRule(models.CategoryEntertainment, "entertainment", "movie", "netflix", "spotify"),
	newRule(models.CategoryShopping, "shopping", "amazon", "flipkart", "myntra", "apparel"),
	newRule(models.CategoryHealth, "health", "pharmacy", "doctor", "hospital"),
	newRule(models.CategoryInvestments, "investment", "stocks", "mutual fund"),
	newRule(models.CategoryIncome, "salary", "payroll"),
}

// Categorize returns the category for a transaction description.
func Categorize(description string) models.Category {
	description = strings.ToLower(strings.TrimSpace(description))

	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if glob.Glob(pattern, description) {
				return rule.Category
			}
		}
	}

	return models.CategoryOther
}

// CategorizeAll sets the category on all transactions.
func CategorizeAll(transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = Categorize(transactions[i].Description)
	}
}
