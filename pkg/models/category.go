package models

// Category is the label assigned to a transaction by the categorizer.
type Category string

const (
	CategoryHousing       Category = "Housing"
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryInvestments   Category = "Investments"
	CategoryIncome        Category = "Income"
	CategoryOther         Category = "Other"
)

// Categories lists all categories in the order they are reported.
var Categories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTravel,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryInvestments,
	CategoryIncome,
	CategoryOther,
}

func (c Category) String() string {
	return string(c)
}
