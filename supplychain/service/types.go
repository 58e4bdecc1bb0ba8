package service

import (
	supplychain "github.com/doitintl/hello/agent-data-api/supplychain/domain"
)

type Status struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Message string            `json:"mensaje"`
	Order   supplychain.Order `json:"orden"`
}
