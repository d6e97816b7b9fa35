package dto

// CategoriesResponse is returned by GET /categories. Keys are category ids.
// @Description Category id to label map
type CategoriesResponse struct {
	Success    bool             `json:"success" example:"true"`
	Categories map[int64]string `json:"categories"`
}
