package value_objects

import "fmt"

type Category string

const (
	CategoryEcommerce Category = "ecommerce"
	CategoryPortfolio Category = "portfolio"
	CategoryBlog      Category = "blog"
	CategoryLanding   Category = "landing"
	CategoryOther     Category = "other"
)

var validCategories = map[Category]bool{
	CategoryEcommerce: true,
	CategoryPortfolio: true,
	CategoryBlog:      true,
	CategoryLanding:   true,
	CategoryOther:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
