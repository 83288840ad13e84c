package types

type CreateTaskRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}
