package service

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/logger"
	mes "github.com/doitintl/hello/agent-data-api/mes/domain"
	"github.com/doitintl/hello/agent-data-api/slice"
	"github.com/doitintl/hello/agent-data-api/tabular"
	"github.com/doitintl/hello/agent-data-api/tabular/dal"
	"github.com/doitintl/hello/agent-data-api/tabular/dal/iface"
)

const (
	indexMessage = "API Agente de Producción MES"
	version      = "1.0.0"
)

type MESService struct {
	loggerProvider logger.Provider
	workbooks      iface.Loader
}

func NewMESService(log logger.Provider) *MESService {
	return NewMESServiceWith(log, dal.NewLocalFile(common.DataDir(), tabular.CSVOptions{}))
}

func NewMESServiceWith(log logger.Provider, workbooks iface.Loader) *MESService {
	return &MESService{
		loggerProvider: log,
		workbooks:      workbooks,
	}
}

func (s *MESService) Index() Index {
	return Index{
		Message:   indexMessage,
		Version:   version,
		Endpoints: mes.Endpoints,
	}
}

func (s *MESService) load(ctx context.Context, name string) (*tabular.Table, error) {
	t, err := s.workbooks.Load(ctx, name)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "Error al leer %s", name)
	}

	return t, nil
}

// loadAll reads the named workbooks concurrently, in argument order.
func (s *MESService) loadAll(ctx context.Context, names ...string) ([]*tabular.Table, error) {
	tables := make([]*tabular.Table, len(names))

	g, gctx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name

		g.Go(func() error {
			t, err := s.load(gctx, name)
			if err != nil {
				return err
			}

			tables[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func (s *MESService) list(ctx context.Context, name string) ([]tabular.OrderedRecord, error) {
	t, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}

	return t.Records(), nil
}

func (s *MESService) ListOrders(ctx context.Context) ([]tabular.OrderedRecord, error) {
	return s.list(ctx, mes.WorkbookOrders)
}

func (s *MESService) ActiveOrders(ctx context.Context) ([]tabular.OrderedRecord, error) {
	orders, err := s.load(ctx, mes.WorkbookOrders)
	if err != nil {
		return nil, err
	}

	return orders.Where(func(r tabular.Record) bool {
		return slice.Contains(mes.ActiveStates, r.String(mes.ColumnState))
	}).Records(), nil
}

func (s *MESService) ListDowntime(ctx context.Context) ([]tabular.OrderedRecord, error) {
	return s.list(ctx, mes.WorkbookDowntime)
}

func (s *MESService) ListScrap(ctx context.Context) ([]tabular.OrderedRecord, error) {
	return s.list(ctx, mes.WorkbookScrap)
}

func (s *MESService) AssignedStaff(ctx context.Context) ([]tabular.OrderedRecord, error) {
	return s.list(ctx, mes.WorkbookStaff)
}

// inProgress returns the first order of line that is in progress, or nil.
func inProgress(orders *tabular.Table, line string) tabular.Record {
	return orders.Where(func(r tabular.Record) bool {
		return r.String(mes.ColumnLine) == line && r.String(mes.ColumnState) == mes.StateInProgress
	}).First()
}

func forLine(t *tabular.Table, line string) *tabular.Table {
	return t.Where(func(r tabular.Record) bool {
		return r.String(mes.ColumnLine) == line
	})
}

func sum(t *tabular.Table, column string) float64 {
	values := make([]float64, 0, t.Len())
	for _, r := range t.Rows {
		values = append(values, r.Float(column))
	}

	return floats.Sum(values)
}

func (s *MESService) CurrentProduction(ctx context.Context) ([]LineProduction, error) {
	tables, err := s.loadAll(ctx, mes.WorkbookLines, mes.WorkbookOrders)
	if err != nil {
		return nil, err
	}

	lines, orders := tables[0], tables[1]

	out := make([]LineProduction, 0, lines.Len())

	for _, line := range lines.Rows {
		order := inProgress(orders, line.String(mes.ColumnLine))
		if order == nil {
			out = append(out, LineProduction{
				Line:    line[mes.ColumnLine],
				State:   line[mes.ColumnState],
				Message: "Sin orden activa",
			})

			continue
		}

		var completed float64
		if target := order.Float(mes.ColumnTargetQty); target != 0 {
			completed = mes.Round(order.Float(mes.ColumnProducedQty)/target*100, 1)
		}

		out = append(out, LineProduction{
			Line:             line[mes.ColumnLine],
			State:            line[mes.ColumnState],
			OrderID:          order[mes.ColumnOrderID],
			Product:          order[mes.ColumnProduct],
			TargetQty:        order[mes.ColumnTargetQty],
			ProducedQty:      order[mes.ColumnProducedQty],
			CompletedPercent: &completed,
			Shift:            line[mes.ColumnShift],
			Operators:        line[mes.ColumnOperators],
			CycleTime:        line[mes.ColumnCycleTime],
			OEE:              line[mes.ColumnOEE],
		})
	}

	return out, nil
}

// AnalyzeShift explains the output deviation of the order in progress on a
// line. It returns mes.ErrNoActiveOrder when the line is idle.
func (s *MESService) AnalyzeShift(ctx context.Context, req ShiftRequest) (*ShiftAnalysis, error) {
	tables, err := s.loadAll(ctx, mes.WorkbookLines, mes.WorkbookOrders, mes.WorkbookDowntime, mes.WorkbookScrap)
	if err != nil {
		return nil, err
	}

	lines, orders, downtime, scrap := tables[0], tables[1], tables[2], tables[3]

	line := forLine(lines, req.Line).First()
	if line == nil {
		return nil, tabular.NotFound(mes.ErrLineNotFound.Error())
	}

	order := inProgress(orders, req.Line)
	if order == nil {
		return nil, mes.ErrNoActiveOrder
	}

	stops := forLine(downtime, req.Line)
	downtimeTotal := sum(stops, mes.ColumnDurationMinutes)
	scrapTotal := sum(forLine(scrap, req.Line), mes.ColumnQuantity)

	events := make([]mes.DowntimeEvent, 0, stops.Len())
	for _, r := range stops.Rows {
		events = append(events, mes.DowntimeEvent{
			Cause:     r[mes.ColumnCause],
			Minutes:   r.Float(mes.ColumnDurationMinutes),
			UnitsLost: r[mes.ColumnUnitsLost],
		})
	}

	cycle := mes.CycleTimes{
		Actual:   line.Float(mes.ColumnCycleTime),
		Standard: line.Float(mes.ColumnStdCycleTime),
	}

	deviation := mes.OutputDeviation(order.Float(mes.ColumnProducedQty), order.Float(mes.ColumnTargetQty))

	return &ShiftAnalysis{
		Line:            req.Line,
		Shift:           req.ShiftNumber(),
		OrderID:         order[mes.ColumnOrderID],
		Product:         order[mes.ColumnProduct],
		OutputDeviation: deviation,
		ShiftOEE:        line[mes.ColumnOEE],
		RootCauses:      mes.RootCauses(events, downtimeTotal, cycle, scrapTotal),
		Recommendations: mes.Recommendations(deviation, downtimeTotal, cycle),
		DowntimeMinutes: downtimeTotal,
		ScrapUnits:      scrapTotal,
	}, nil
}

func (s *MESService) MaterialConsumption(ctx context.Context, orderID string) ([]tabular.OrderedRecord, error) {
	consumption, err := s.load(ctx, mes.WorkbookMaterials)
	if err != nil {
		return nil, err
	}

	rows := consumption.Where(func(r tabular.Record) bool {
		return r.String(mes.ColumnOrderID) == orderID
	})

	if rows.Empty() {
		return nil, tabular.NotFound(mes.ErrOrderNotFound.Error())
	}

	return rows.Records(), nil
}

// MissingMaterials lists the materials whose inventory cannot cover the units
// the order still has to produce.
func (s *MESService) MissingMaterials(ctx context.Context, req MaterialRequest) (*MissingMaterials, error) {
	tables, err := s.loadAll(ctx, mes.WorkbookOrders, mes.WorkbookMaterials)
	if err != nil {
		return nil, err
	}

	orders, consumption := tables[0], tables[1]

	order := orders.Find(mes.ColumnOrderID, req.OrderID)
	if order == nil {
		return nil, tabular.NotFound(mes.ErrOrderNotFound.Error())
	}

	target := order.Float(mes.ColumnTargetQty)
	pending := target - order.Float(mes.ColumnProducedQty)

	shortages := make([]mes.Shortage, 0)

	for _, r := range consumption.Rows {
		if r.String(mes.ColumnOrderID) != req.OrderID {
			continue
		}

		need := mes.MaterialNeed{
			Material:     r[mes.ColumnMaterial],
			Unit:         r[mes.ColumnUnit],
			PerUnit:      r.Float(mes.ColumnBOMQty),
			Available:    r.Float(mes.ColumnInventory),
			AvailableRaw: r[mes.ColumnInventory],
		}

		if sh, short := mes.MaterialShortage(need, pending, target); short {
			shortages = append(shortages, sh)
		}
	}

	return &MissingMaterials{
		OrderID:    req.OrderID,
		Product:    order[mes.ColumnProduct],
		PendingQty: pending,
		Shortages:  shortages,
		Total:      len(shortages),
	}, nil
}

func (s *MESService) ComputeOEE(ctx context.Context, line string) (*mes.OEE, error) {
	tables, err := s.loadAll(ctx, mes.WorkbookLines, mes.WorkbookOrders, mes.WorkbookDowntime, mes.WorkbookScrap)
	if err != nil {
		return nil, err
	}

	lines, orders, downtime, scrap := tables[0], tables[1], tables[2], tables[3]

	state := forLine(lines, line).First()
	if state == nil {
		return nil, tabular.NotFound(mes.ErrLineNotFound.Error())
	}

	downtimeTotal := sum(forLine(downtime, line), mes.ColumnDurationMinutes)
	scrapTotal := sum(forLine(scrap, line), mes.ColumnQuantity)

	var produced *float64
	if order := inProgress(orders, line); order != nil {
		p := order.Float(mes.ColumnProducedQty)
		produced = &p
	}

	cycle := mes.CycleTimes{
		Actual:   state.Float(mes.ColumnCycleTime),
		Standard: state.Float(mes.ColumnStdCycleTime),
	}

	availability, performance, quality, oee := mes.ComputeOEE(downtimeTotal, cycle, produced, scrapTotal)

	return &mes.OEE{
		Line:              line,
		OEE:               oee,
		Availability:      availability,
		Performance:       performance,
		Quality:           quality,
		DowntimeMinutes:   downtimeTotal,
		ActualCycleTime:   state[mes.ColumnCycleTime],
		StandardCycleTime: state[mes.ColumnStdCycleTime],
	}, nil
}
