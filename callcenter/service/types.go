package service

import "github.com/doitintl/hello/agent-data-api/tabular"

type Status struct {
	Message string `json:"message"`
}

type SearchResponse struct {
	Count   int                     `json:"count"`
	Results []tabular.OrderedRecord `json:"results"`
}
