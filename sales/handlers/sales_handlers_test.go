package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	sales "github.com/doitintl/hello/agent-data-api/sales/domain"
	"github.com/doitintl/hello/agent-data-api/sales/service"
	"github.com/doitintl/hello/agent-data-api/sales/service/mocks"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

func GetSalesContext(method string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, "http://example.com/ventas", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx, recorder
}

func TestSales_SearchProducts(t *testing.T) {
	s := mocks.NewSalesIface(t)
	h := &Sales{logger.FromContext, s}

	s.On("SearchProducts", mock.Anything, "router").Return(tabular.NewTable(
		[]string{"Product_ID", "Product_Name"},
		tabular.Record{"Product_ID": "W1", "Product_Name": "Router AX"},
	), nil).Once()
	s.On("SearchProducts", mock.Anything, "nada").Return(nil, tabular.NotFound(sales.ErrProductNotFound.Error())).Once()

	ctx, recorder := GetSalesContext(http.MethodGet, nil)
	ctx.Params = []gin.Param{{Key: "query", Value: "router"}}

	assert.NoError(t, h.SearchProducts(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `[{"Product_ID":"W1","Product_Name":"Router AX"}]`, recorder.Body.String())

	ctx, _ = GetSalesContext(http.MethodGet, nil)
	ctx.Params = []gin.Param{{Key: "query", Value: "nada"}}

	err := h.SearchProducts(ctx)
	assert.Equal(t, http.StatusNotFound, web.StatusOf(err))
}

func TestSales_AddSale(t *testing.T) {
	sale := sales.Sale{
		FullName: "Ana López",
		Phone:    "5550100",
		Email:    "ana@example.com",
		Address:  "Calle 1",
		Product:  "W1",
	}

	valid, err := json.Marshal(sale)
	if err != nil {
		t.Fatal(err)
	}

	badEmail := sale
	badEmail.Email = "ana"

	invalid, err := json.Marshal(badEmail)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		body         []byte
		on           func(*mocks.SalesIface)
		wantErr      bool
		expectedCode int
	}{
		{
			name: "added",
			body: valid,
			on: func(s *mocks.SalesIface) {
				s.On("AddSale", mock.Anything, sale).Return(&service.AddSaleResponse{Message: "ok", Sale: sale}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "product not in catalog",
			body: valid,
			on: func(s *mocks.SalesIface) {
				s.On("AddSale", mock.Anything, sale).Return(nil, sales.ErrProductNotInCatalog)
			},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "ledger conflict",
			body: valid,
			on: func(s *mocks.SalesIface) {
				s.On("AddSale", mock.Anything, sale).Return(nil, tabular.WriteConflict(nil, "sha mismatch"))
			},
			wantErr:      true,
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid email",
			body:         invalid,
			wantErr:      true,
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mocks.NewSalesIface(t)
			h := &Sales{logger.FromContext, s}

			if tt.on != nil {
				tt.on(s)
			}

			ctx, recorder := GetSalesContext(http.MethodPost, bytes.NewReader(tt.body))

			err := h.AddSale(ctx)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AddSale() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, tt.expectedCode, web.StatusOf(err))
				return
			}

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}
