package dto

type CreateCategoryRequest struct {
	Code     string  `json:"code"      validate:"required,min=1,max=64"`
	Name     string  `json:"name"      validate:"required,min=1,max=120"`
	GccCode  *string `json:"gcc_code"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"      validate:"omitempty,min=1,max=120"`
	GccCode  *string `json:"gcc_code"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type CategoryResponse struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	GccCode  *string `json:"gcc_code"`
	ParentID *string `json:"parent_id"`
}
