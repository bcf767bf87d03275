package services

import "bloglist/internal/models"

// TotalLikes sums the likes across all blogs. An empty slice sums to 0.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the
// first maximal element in input order. Returns nil for an empty slice.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := range blogs {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}
