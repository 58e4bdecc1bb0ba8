package service

import (
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type Status struct {
	Status            string   `json:"status"`
	DatasetsAvailable []string `json:"datasets_available"`
}

type DataRequest struct {
	Dataset string
	Column  string `form:"column"`
	Value   string `form:"value"`
	Exact   bool   `form:"exact"`
}

type DataResponse struct {
	Dataset string                  `json:"dataset"`
	Rows    int                     `json:"rows"`
	Columns []string                `json:"columns"`
	Data    []tabular.OrderedRecord `json:"data"`
}

type PartResponse struct {
	PartNumber string                  `json:"part_number"`
	RowsFound  int                     `json:"rows_found"`
	Data       []tabular.OrderedRecord `json:"data"`
}

type FiveWhysResponse struct {
	Status       string `json:"status"`
	CommitResult string `json:"commit_result"`
}
