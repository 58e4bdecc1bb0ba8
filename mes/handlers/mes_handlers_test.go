package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	mes "github.com/doitintl/hello/agent-data-api/mes/domain"
	"github.com/doitintl/hello/agent-data-api/mes/service"
	"github.com/doitintl/hello/agent-data-api/mes/service/mocks"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type mesFields struct {
	loggerProvider logger.Provider
	service        *mocks.MESIface
}

func GetMESContext(method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx, recorder
}

func newHandler(t *testing.T) (*MES, *mesFields) {
	fields := &mesFields{
		logger.FromContext,
		mocks.NewMESIface(t),
	}

	return &MES{
		loggerProvider: fields.loggerProvider,
		service:        fields.service,
	}, fields
}

func TestMES_AnalyzeShift(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		on           func(*mesFields)
		wantErr      bool
		expectedCode int
		wantBody     string
	}{
		{
			name: "analysis",
			body: `{"linea":"L1","turno":2}`,
			on: func(f *mesFields) {
				f.service.On("AnalyzeShift", mock.Anything, service.ShiftRequest{Line: "L1", Shift: shift(2)}).
					Return(&service.ShiftAnalysis{Line: "L1", Shift: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no active order",
			body: `{"linea":"L2","turno":1}`,
			on: func(f *mesFields) {
				f.service.On("AnalyzeShift", mock.Anything, service.ShiftRequest{Line: "L2", Shift: shift(1)}).
					Return(nil, mes.ErrNoActiveOrder)
			},
			expectedCode: http.StatusOK,
			wantBody:     `{"mensaje":"No hay orden activa en esta línea"}`,
		},
		{
			name: "unknown line",
			body: `{"linea":"L9","turno":1}`,
			on: func(f *mesFields) {
				f.service.On("AnalyzeShift", mock.Anything, service.ShiftRequest{Line: "L9", Shift: shift(1)}).
					Return(nil, tabular.NotFound("Línea no encontrada"))
			},
			wantErr:      true,
			expectedCode: http.StatusNotFound,
		},
		{
			name: "shift zero",
			body: `{"linea":"L1","turno":0}`,
			on: func(f *mesFields) {
				f.service.On("AnalyzeShift", mock.Anything, service.ShiftRequest{Line: "L1", Shift: shift(0)}).
					Return(&service.ShiftAnalysis{Line: "L1", Shift: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing shift",
			body:         `{"linea":"L1"}`,
			wantErr:      true,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "missing line",
			body:         `{"turno":1}`,
			wantErr:      true,
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fields := newHandler(t)

			if tt.on != nil {
				tt.on(fields)
			}

			ctx, recorder := GetMESContext(http.MethodPost, "/analisis-turno", bytes.NewBufferString(tt.body))

			err := h.AnalyzeShift(ctx)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AnalyzeShift() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, tt.expectedCode, web.StatusOf(err))
				return
			}

			assert.Equal(t, tt.expectedCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestMES_MaterialConsumption(t *testing.T) {
	tests := []struct {
		name         string
		orderID      string
		on           func(*mesFields)
		wantErr      bool
		expectedCode int
	}{
		{
			name:    "found",
			orderID: "OP-1",
			on: func(f *mesFields) {
				f.service.On("MaterialConsumption", mock.Anything, "OP-1").Return([]tabular.OrderedRecord{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "not found",
			orderID: "OP-9",
			on: func(f *mesFields) {
				f.service.On("MaterialConsumption", mock.Anything, "OP-9").Return(nil, tabular.NotFound("Orden no encontrada"))
			},
			wantErr:      true,
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "unreadable workbook",
			orderID: "OP-1",
			on: func(f *mesFields) {
				f.service.On("MaterialConsumption", mock.Anything, "OP-1").
					Return(nil, tabular.RemoteAccess(errors.New("zip: not a valid zip file"), "Error al leer datos_consumo_materiales.xlsx"))
			},
			wantErr:      true,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fields := newHandler(t)
			tt.on(fields)

			ctx, recorder := GetMESContext(http.MethodGet, "/consumo-materiales/"+tt.orderID, nil)
			ctx.Params = []gin.Param{{Key: "orden_id", Value: tt.orderID}}

			err := h.MaterialConsumption(ctx)

			if (err != nil) != tt.wantErr {
				t.Fatalf("MaterialConsumption() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, tt.expectedCode, web.StatusOf(err))
				return
			}

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestMES_MissingMaterials(t *testing.T) {
	h, fields := newHandler(t)

	fields.service.On("MissingMaterials", mock.Anything, service.MaterialRequest{OrderID: "OP-1"}).
		Return(&service.MissingMaterials{OrderID: "OP-1", Shortages: []mes.Shortage{}}, nil)

	ctx, recorder := GetMESContext(http.MethodPost, "/material-faltante", bytes.NewBufferString(`{"orden_id":"OP-1"}`))

	err := h.MissingMaterials(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	ctx, _ = GetMESContext(http.MethodPost, "/material-faltante", bytes.NewBufferString(`{}`))
	err = h.MissingMaterials(ctx)

	assert.Equal(t, http.StatusUnprocessableEntity, web.StatusOf(err))
}

func TestMES_ComputeOEE(t *testing.T) {
	h, fields := newHandler(t)

	fields.service.On("ComputeOEE", mock.Anything, "L1").Return(&mes.OEE{Line: "L1", OEE: 0.7}, nil)

	ctx, recorder := GetMESContext(http.MethodGet, "/oee/calcular/L1", nil)
	ctx.Params = []gin.Param{{Key: "linea", Value: "L1"}}

	assert.NoError(t, h.ComputeOEE(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMES_Root(t *testing.T) {
	h, fields := newHandler(t)

	fields.service.On("Index").Return(service.Index{Message: "API Agente de Producción MES", Version: "1.0.0"})

	ctx, recorder := GetMESContext(http.MethodGet, "/", nil)

	assert.NoError(t, h.Root(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func shift(n int) *int {
	return &n
}
