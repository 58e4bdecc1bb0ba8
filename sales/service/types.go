package service

import (
	sales "github.com/doitintl/hello/agent-data-api/sales/domain"
)

type Status struct {
	Status string `json:"status"`
}

type AddSaleResponse struct {
	Message string     `json:"mensaje"`
	Sale    sales.Sale `json:"venta"`
}
