package domain

import "fmt"

// FoodCategory is the closed cuisine enumeration. CategoryAny is the wildcard
// "unrestricted" value. Adding a category means touching every switch below,
// which is the point: the mapping is checked at compile time, not looked up in
// a dictionary of arbitrary strings.
type FoodCategory int

const (
	CategoryAny FoodCategory = iota
	CategoryRamen
	CategoryHotpot
	CategoryCurry
	CategorySteak
	CategoryBrunch
	CategoryBento
	CategoryYakiniku
	CategoryDessert
	CategoryDrinks
)

// Wire values match the category chips the clients render.
const (
	wireAny      = "不限"
	wireRamen    = "拉麵"
	wireHotpot   = "火鍋"
	wireCurry    = "咖哩"
	wireSteak    = "牛排"
	wireBrunch   = "早午餐"
	wireBento    = "便當"
	wireYakiniku = "燒肉"
	wireDessert  = "甜點"
	wireDrinks   = "飲料"
)

// AllCategories lists the enumeration in display order, wildcard first.
func AllCategories() []FoodCategory {
	return []FoodCategory{
		CategoryAny, CategoryRamen, CategoryHotpot, CategoryCurry,
		CategorySteak, CategoryBrunch, CategoryBento, CategoryYakiniku,
		CategoryDessert, CategoryDrinks,
	}
}

func (c FoodCategory) String() string {
	switch c {
	case CategoryAny:
		return wireAny
	case CategoryRamen:
		return wireRamen
	case CategoryHotpot:
		return wireHotpot
	case CategoryCurry:
		return wireCurry
	case CategorySteak:
		return wireSteak
	case CategoryBrunch:
		return wireBrunch
	case CategoryBento:
		return wireBento
	case CategoryYakiniku:
		return wireYakiniku
	case CategoryDessert:
		return wireDessert
	case CategoryDrinks:
		return wireDrinks
	}
	return wireAny
}

// ParseFoodCategory maps a wire value back to the enumeration.
func ParseFoodCategory(s string) (FoodCategory, error) {
	switch s {
	case wireAny:
		return CategoryAny, nil
	case wireRamen:
		return CategoryRamen, nil
	case wireHotpot:
		return CategoryHotpot, nil
	case wireCurry:
		return CategoryCurry, nil
	case wireSteak:
		return CategorySteak, nil
	case wireBrunch:
		return CategoryBrunch, nil
	case wireBento:
		return CategoryBento, nil
	case wireYakiniku:
		return CategoryYakiniku, nil
	case wireDessert:
		return CategoryDessert, nil
	case wireDrinks:
		return CategoryDrinks, nil
	}
	return CategoryAny, fmt.Errorf("unknown food category %q", s)
}

// CuisinePattern returns the cuisine tag regex used to narrow spatial queries.
// The wildcard category returns "" meaning no cuisine restriction.
func (c FoodCategory) CuisinePattern() string {
	switch c {
	case CategoryAny:
		return ""
	case CategoryRamen:
		return "ramen|japanese"
	case CategoryHotpot:
		return "hotpot|chinese"
	case CategoryCurry:
		return "curry|indian|japanese"
	case CategorySteak:
		return "steak|steak_house|american"
	case CategoryBrunch:
		return "breakfast|brunch|coffee_shop"
	case CategoryBento:
		return "taiwanese|regional|chinese"
	case CategoryYakiniku:
		return "barbecue|bbq|japanese|korean"
	case CategoryDessert:
		return "dessert|ice_cream|confectionery|bakery"
	case CategoryDrinks:
		return "coffee_shop|tea|bubble_tea|juice"
	}
	return ""
}
