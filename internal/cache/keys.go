package cache

const keyPrefix = "quizgen"

// CategoriesKey is the cache key holding the distinct-category list.
func CategoriesKey() string {
	return keyPrefix + ":categories"
}
