package handlers

import (
	"bytes"
	"encoding/json"
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
	manufacturing "github.com/doitintl/hello/agent-data-api/manufacturing/domain"
	"github.com/doitintl/hello/agent-data-api/manufacturing/service"
	"github.com/doitintl/hello/agent-data-api/manufacturing/service/mocks"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type manufacturingFields struct {
	loggerProvider logger.Provider
	service        *mocks.ManufacturingIface
}

func GetManufacturingContext(method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx, recorder
}

func TestManufacturing_QueryData(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		ctxParams    []gin.Param
		on           func(*manufacturingFields)
		wantErr      bool
		expectedCode int
	}{
		{
			name:      "filtered query",
			target:    "/data/bom?column=part&value=A-1&exact=true",
			ctxParams: []gin.Param{{Key: "dataset", Value: "bom"}},
			on: func(f *manufacturingFields) {
				f.service.On("QueryData", mock.Anything, service.DataRequest{
					Dataset: "bom",
					Column:  "part",
					Value:   "A-1",
					Exact:   true,
				}).Return(&service.DataResponse{Dataset: "bom", Columns: []string{"part"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "invalid dataset",
			target:    "/data/nope",
			ctxParams: []gin.Param{{Key: "dataset", Value: "nope"}},
			on: func(f *manufacturingFields) {
				f.service.On("QueryData", mock.Anything, service.DataRequest{Dataset: "nope"}).
					Return(nil, manufacturing.ErrInvalidDataset)
			},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "missing file",
			target:    "/data/bom",
			ctxParams: []gin.Param{{Key: "dataset", Value: "bom"}},
			on: func(f *manufacturingFields) {
				f.service.On("QueryData", mock.Anything, service.DataRequest{Dataset: "bom"}).
					Return(nil, tabular.NotFound("file BillOfMaterials.csv not found"))
			},
			wantErr:      true,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed exact flag",
			target:       "/data/bom?exact=maybe",
			ctxParams:    []gin.Param{{Key: "dataset", Value: "bom"}},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := manufacturingFields{
				logger.FromContext,
				mocks.NewManufacturingIface(t),
			}
			h := &Manufacturing{
				loggerProvider: fields.loggerProvider,
				service:        fields.service,
			}

			if tt.on != nil {
				tt.on(&fields)
			}

			ctx, recorder := GetManufacturingContext(http.MethodGet, tt.target, nil)
			ctx.Params = tt.ctxParams

			err := h.QueryData(ctx)

			if (err != nil) != tt.wantErr {
				t.Fatalf("QueryData() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, tt.expectedCode, web.StatusOf(err))
				return
			}

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestManufacturing_AddFiveWhys(t *testing.T) {
	analysis := manufacturing.FiveWhys{
		AnalysisID:       "A-7",
		RelatedEventID:   "DT-3",
		ProblemStatement: "Paro en línea 2",
		Why1:             "a",
		Why2:             "b",
		Why3:             "c",
		Why4:             "d",
		Why5:             "e",
		CorrectiveAction: "cambiar sensor",
		Status:           "open",
	}

	valid, err := json.Marshal(analysis)
	if err != nil {
		t.Fatal(err)
	}

	incomplete, err := json.Marshal(map[string]string{"analysis_id": "A-8"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		body         []byte
		on           func(*manufacturingFields)
		wantErr      bool
		expectedCode int
	}{
		{
			name: "added",
			body: valid,
			on: func(f *manufacturingFields) {
				f.service.On("AddFiveWhys", mock.Anything, analysis).
					Return(&service.FiveWhysResponse{Status: "5Whys added successfully", CommitResult: "abc"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing fields",
			body:         incomplete,
			wantErr:      true,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "not json",
			body:         []byte("{"),
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "save failed",
			body: valid,
			on: func(f *manufacturingFields) {
				f.service.On("AddFiveWhys", mock.Anything, analysis).Return(nil, errors.New("disk full"))
			},
			wantErr:      true,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := manufacturingFields{
				logger.FromContext,
				mocks.NewManufacturingIface(t),
			}
			h := &Manufacturing{
				loggerProvider: fields.loggerProvider,
				service:        fields.service,
			}

			if tt.on != nil {
				tt.on(&fields)
			}

			ctx, recorder := GetManufacturingContext(http.MethodPost, "/5whys/add", bytes.NewReader(tt.body))

			err := h.AddFiveWhys(ctx)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AddFiveWhys() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, tt.expectedCode, web.StatusOf(err))
				return
			}

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestManufacturing_Root(t *testing.T) {
	s := mocks.NewManufacturingIface(t)
	s.On("Status").Return(service.Status{Status: "Manufacturing AI API running", DatasetsAvailable: []string{"bom"}})

	h := &Manufacturing{logger.FromContext, s}
	ctx, recorder := GetManufacturingContext(http.MethodGet, "/", nil)

	assert.NoError(t, h.Root(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"status":"Manufacturing AI API running","datasets_available":["bom"]}`, recorder.Body.String())
}
