package service

type MessageResponse struct {
	Message string `json:"message"`
}

type SearchRequest struct {
	Filters map[string]string
	Exact   bool
}
