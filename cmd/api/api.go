package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"

	callcenter "github.com/doitintl/hello/agent-data-api/callcenter/handlers"
	"github.com/doitintl/hello/agent-data-api/cmd/api/handlers"
	"github.com/doitintl/hello/agent-data-api/common"
	employees "github.com/doitintl/hello/agent-data-api/employees/handlers"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/mid"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	manufacturing "github.com/doitintl/hello/agent-data-api/manufacturing/handlers"
	mes "github.com/doitintl/hello/agent-data-api/mes/handlers"
	"github.com/doitintl/hello/agent-data-api/metrics"
	reports "github.com/doitintl/hello/agent-data-api/reports/handlers"
	sales "github.com/doitintl/hello/agent-data-api/sales/handlers"
	supplychain "github.com/doitintl/hello/agent-data-api/supplychain/handlers"
)

// routes mounts the endpoints of one service on app.
type routes func(ctx context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error

type service struct {
	needs  connection.Needs
	routes routes
}

var services = map[string]service{
	"manufacturing": {connection.Needs{GitHub: true}, manufacturingRoutes},
	"sales":         {connection.Needs{GitHub: true}, salesRoutes},
	"supplychain":   {connection.Needs{GitHub: true}, supplyChainRoutes},
	"callcenter":    {connection.Needs{ObjectStorage: true}, callCenterRoutes},
	"employees":     {connection.Needs{Workspace: true}, employeesRoutes},
	"mes":           {connection.Needs{}, mesRoutes},
	"reports":       {connection.Needs{Mail: true}, reportsRoutes},
}

// Services returns the names accepted by NewAPI, sorted.
func Services() []string {
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	name     string
	service  service
}

func NewAPI(ctx context.Context, shutdown chan os.Signal, logging *logger.Logging, name string) (*API, error) {
	s, ok := services[name]
	if !ok {
		return nil, fmt.Errorf("unknown service %q, expected one of %v", name, Services())
	}

	conn, err := connection.NewConnection(ctx, s.needs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &API{
		shutdown: shutdown,
		log:      logging,
		conn:     conn,
		name:     name,
		service:  s,
	}, nil
}

// Close releases the vendor clients of the service.
func (a *API) Close() error {
	return a.conn.Close()
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build(ctx context.Context) (http.Handler, error) {
	loggerProvider := logger.FromContext

	app := web.NewApp(a.shutdown, web.Options{
		Service:   a.name,
		SentryDSN: common.GetEnv("SENTRY_DSN", ""),
	}, mid.Logger(), mid.Metrics(), mid.Errors(), mid.Sentry(), mid.Panics())

	app.Get("/health", handlers.Health)
	app.HandleRaw(http.MethodGet, "/metrics", metrics.Handler())

	if common.IsLocalhost {
		app.Get("/boom", handlers.Boom)
	}

	if err := a.service.routes(ctx, app, loggerProvider, a.conn); err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return app, nil
}

func manufacturingRoutes(_ context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h, err := manufacturing.NewManufacturing(log, conn)
	if err != nil {
		return err
	}

	app.Get("/", h.Root)
	app.Get("/datasets/guide", h.Guide)
	app.Get("/data/:dataset", h.QueryData, mid.PathParams("dataset"))
	app.Get("/bom/part/:part_number", h.GetPart)
	app.Post("/5whys/add", h.AddFiveWhys)

	return nil
}

func salesRoutes(_ context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h, err := sales.NewSales(log, conn)
	if err != nil {
		return err
	}

	app.Get("/", h.Root)

	productsGroup := web.NewGroup(app, "/productos")
	{
		productsGroup.Get("/", h.ListProducts)
		productsGroup.Get("/:query", h.SearchProducts)
	}

	salesGroup := web.NewGroup(app, "/ventas")
	{
		salesGroup.Get("/", h.ListSales)
		salesGroup.Post("/agregar", h.AddSale)
	}

	return nil
}

func supplyChainRoutes(_ context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h, err := supplychain.NewSupplyChain(log, conn)
	if err != nil {
		return err
	}

	app.Get("/", h.Root)
	app.Get("/inventario/:numero_parte", h.Inventory)
	app.Get("/transito/:numero_parte", h.Transit)
	app.Post("/crear_orden_automatica/:numero_parte", h.CreateAutomaticOrder)

	ordersGroup := web.NewGroup(app, "/ordenes")
	{
		ordersGroup.Get("/", h.ListOrders)
		ordersGroup.Post("/agregar", h.AddOrder)
	}

	return nil
}

func callCenterRoutes(ctx context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h, err := callcenter.NewCallCenter(log, conn)
	if err != nil {
		return err
	}

	h.Warm(ctx)

	app.Get("/", h.Root)
	app.Get("/all", h.All)
	app.Post("/search", h.Search)
	app.Get("/usuario/:usuario_id", h.ByUser)

	return nil
}

func employeesRoutes(_ context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h := employees.NewEmployees(log, conn)

	usersGroup := web.NewGroup(app, "/users")
	{
		usersGroup.Get("", h.ListUsers)
		usersGroup.Post("", h.CreateUser)
		usersGroup.Get("/search", h.SearchUsers)
		usersGroup.Get("/:user_id", h.GetUser)
		usersGroup.Patch("/:user_id", h.UpdateField)
		usersGroup.Put("/:user_id", h.ReplaceUser)
	}

	return nil
}

func mesRoutes(_ context.Context, app *web.App, log logger.Provider, _ *connection.Connection) error {
	h := mes.NewMES(log)

	app.Use(mid.CORS(common.GetEnvList("CORS_ORIGINS", []string{"*"})))

	app.Get("/", h.Root)
	app.Get("/produccion-actual", h.CurrentProduction)
	app.Post("/analisis-turno", h.AnalyzeShift)
	app.Get("/consumo-materiales/:orden_id", h.MaterialConsumption)
	app.Post("/material-faltante", h.MissingMaterials)
	app.Get("/downtime/list", h.ListDowntime)
	app.Get("/scrap/list", h.ListScrap)
	app.Get("/oee/calcular/:linea", h.ComputeOEE)
	app.Get("/personal/asignado", h.AssignedStaff)

	ordersGroup := web.NewGroup(app, "/ordenes-produccion")
	{
		ordersGroup.Get("/list", h.ListOrders)
		ordersGroup.Get("/activas", h.ActiveOrders)
	}

	return nil
}

func reportsRoutes(_ context.Context, app *web.App, log logger.Provider, conn *connection.Connection) error {
	h, err := reports.NewReports(log, conn)
	if err != nil {
		return err
	}

	app.Post("/enviar-correos", h.SendActivityReports)

	return nil
}
